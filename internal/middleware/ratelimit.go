package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// INCR y PEXPIRE en un solo paso: un PEXPIRE perdido dejaría la clave
// sin caducidad y la IP rechazada hasta limpiarla a mano.
var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RateLimitMiddleware limita por IP con ventana fija en Redis, para que el
// límite se mantenga aunque corran varias instancias. Si Redis falla se deja
// pasar la petición (nunca tirar la reserva por el limitador).
func RateLimitMiddleware(rdb redis.Scripter, perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		perMinute = 60
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := "ratelimit:" + c.ClientIP()

		count, err := fixedWindowScript.
			Run(ctx, rdb, []string{key}, time.Minute.Milliseconds()).
			Int64()
		if err != nil {
			log.Println("rate limiter unavailable:", err)
			c.Next()
			return
		}

		if count > int64(perMinute) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate_limit_exceeded"})
			return
		}

		c.Next()
	}
}

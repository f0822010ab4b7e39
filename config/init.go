package config

import (
	"fmt"
	"log"
	"net/http"

	"qrattendance/constants"
	"qrattendance/views"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// InitApp builds the gin engine with CORS, the cookie session store, the
// embedded templates and static assets, plus the websocket hub and the
// cron scheduler used by the background jobs.
func InitApp(cfg *Config) (*gin.Engine, *melody.Melody, *cron.Cron, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AllowCredentials = true
	if len(cfg.CORSOrigins) > 0 {
		configCors.AllowOrigins = cfg.CORSOrigins
	} else {
		configCors.AllowOriginFunc = func(origin string) bool {
			return true
		}
	}
	router.Use(cors.New(configCors))

	router.SetTrustedProxies(nil)

	if err := InitViews(router); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load templates: %v", err)
	}
	router.Use(sessions.Sessions(constants.SessionName, NewSessionStore(cfg)))

	m := melody.New()

	c := cron.New(cron.WithLocation(cfg.Location))

	log.Println("App initialized successfully")
	return router, m, c, nil
}

// NewSessionStore returns the signed-cookie session store.
func NewSessionStore(cfg *Config) sessions.Store {
	store := cookie.NewStore([]byte(cfg.SecretKey))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	return store
}

// InitViews loads the embedded templates and mounts /static.
func InitViews(router *gin.Engine) error {
	tmpl, err := views.Templates()
	if err != nil {
		return err
	}
	router.SetHTMLTemplate(tmpl)
	router.StaticFS("/static", http.FS(views.Static()))
	return nil
}

func InitWebSocket(router gin.IRoutes, m *melody.Melody) {
	router.GET("/ws", func(c *gin.Context) {
		m.HandleRequest(c.Writer, c.Request)
	})
	log.Println("WebSocket initialized successfully")
}

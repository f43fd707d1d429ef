package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/crisisconnect/backend/internal/auth"
	authHandler "github.com/crisisconnect/backend/internal/handler/auth"
	chatHandler "github.com/crisisconnect/backend/internal/handler/chat"
	chatbotHandler "github.com/crisisconnect/backend/internal/handler/chatbot"
	crisisHandler "github.com/crisisconnect/backend/internal/handler/crisis"
	eventHandler "github.com/crisisconnect/backend/internal/handler/event"
	newsHandler "github.com/crisisconnect/backend/internal/handler/news"
	notifyHandler "github.com/crisisconnect/backend/internal/handler/notify"
	userHandler "github.com/crisisconnect/backend/internal/handler/user"
	"github.com/crisisconnect/backend/internal/middleware"
	"github.com/crisisconnect/backend/internal/model/crisis"
	"github.com/crisisconnect/backend/internal/model/event"
	"github.com/crisisconnect/backend/internal/model/user"
	chatservice "github.com/crisisconnect/backend/internal/service/chat"
)

// Deps bundles everything the router wires together.
type Deps struct {
	Users   user.Store
	Events  event.Store
	Crises  crisis.Store
	Tokens  *auth.TokenManager
	PINCost int
	Hub     *chatservice.Hub
	Feed    newsHandler.Feed
	Replier chatbotHandler.Replier
}

// NewRouter wires HTTP routes to core services. Routes registered inside
// the gated group never run without a verified session token.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS)

	authH := authHandler.New(deps.Users, deps.Tokens, deps.PINCost)
	userH := userHandler.New(deps.Users, deps.PINCost)
	eventH := eventHandler.New(deps.Events, deps.Users)
	crisisH := crisisHandler.New(deps.Crises)
	chatH := chatHandler.New(deps.Hub)
	chatbotH := chatbotHandler.New(deps.Replier)
	notifyH := notifyHandler.New()

	// Public surface.
	authH.RegisterRoutes(r)
	crisisH.RegisterPublicRoutes(r)
	eventH.RegisterPublicRoutes(r)
	chatH.RegisterRoutes(r)
	chatbotH.RegisterRoutes(r)
	notifyH.RegisterRoutes(r)
	if deps.Feed != nil {
		newsHandler.New(deps.Feed).RegisterRoutes(r)
	}

	// Gated surface.
	r.Group(func(protected chi.Router) {
		protected.Use(middleware.Authenticator(deps.Tokens))
		userH.RegisterRoutes(protected)
		eventH.RegisterProtectedRoutes(protected)
		crisisH.RegisterProtectedRoutes(protected)
	})

	return r
}

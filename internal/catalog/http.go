package catalog

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"ProductAPI/internal/auth"
	"ProductAPI/pkg/kit"
)

const (
	msgWelcome       = "Welcome to the Product API! Go to /api/products to see all products."
	msgNotFound      = "Product not found"
	msgDeleted       = "Product deleted"
	msgMissingFields = "Missing required product fields"
	msgInvalidBody   = "Invalid JSON body"
	msgInternal      = "Internal Server Error"
)

var defaultValidator = NewValidator()

// Server serves the product catalog API over Store.
type Server struct {
	Store     Store
	Keys      auth.Checker
	Log       *zap.Logger
	Paging    PageConfig
	Validator *Validator
}

type deleteResp struct {
	Message string  `json:"message"`
	Product Product `json:"product"`
}

// Routes serves the catalog behind the api key gate. Unknown paths are
// gated too, so a caller without a key never learns which routes exist.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(auth.Require(s.Keys, s.Log))
	r.NotFound(kit.NotFound)
	r.MethodNotAllowed(kit.MethodNotAllowed)

	r.Get("/", s.welcome)

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", s.list)
		r.With(s.validateBody).Post("/", s.create)

		r.Get("/{id}", s.get)
		r.With(s.requireProduct, s.validateBody).Put("/{id}", s.update)
		r.Delete("/{id}", s.remove)
	})

	return r
}

func (s *Server) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
	defer cancel()

	if err := s.Store.Ping(ctx); err != nil {
		if s.Log != nil {
			s.Log.Warn("readyz failed", zap.Error(err))
		}
		kit.WriteError(w, http.StatusServiceUnavailable, "not ready")
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) welcome(w http.ResponseWriter, _ *http.Request) {
	kit.WriteText(w, http.StatusOK, msgWelcome)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	products, err := s.Store.List(r.Context())
	if err != nil {
		s.logError(r, "list products failed", err)
		kit.WriteError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	q := ParseQuery(r.URL.Query(), s.Paging)
	kit.WriteJSON(w, http.StatusOK, q.Apply(products))
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	p, err := s.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, r, "get product failed", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	f, ok := FieldsFromContext(r.Context())
	if !ok {
		s.logError(r, "create product failed", errors.New("no validated fields in context"))
		kit.WriteError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	p, err := s.Store.Insert(r.Context(), f)
	if err != nil {
		s.writeStoreError(w, r, "insert product failed", err)
		return
	}
	kit.WriteJSON(w, http.StatusCreated, p)
}

// requireProduct answers 404 before the body is even looked at.
func (s *Server) requireProduct(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := s.Store.Get(r.Context(), chi.URLParam(r, "id")); err != nil {
			s.writeStoreError(w, r, "get product failed", err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	f, ok := FieldsFromContext(r.Context())
	if !ok {
		s.logError(r, "update product failed", errors.New("no validated fields in context"))
		kit.WriteError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	p, err := s.Store.Replace(r.Context(), chi.URLParam(r, "id"), f)
	if err != nil {
		s.writeStoreError(w, r, "replace product failed", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	p, err := s.Store.Remove(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, r, "remove product failed", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, deleteResp{Message: msgDeleted, Product: p})
}

func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if errors.Is(err, ErrNotFound) {
		kit.WriteError(w, http.StatusNotFound, msgNotFound)
		return
	}
	s.logError(r, msg, err)
	kit.WriteError(w, http.StatusInternalServerError, msgInternal)
}

func (s *Server) logError(r *http.Request, msg string, err error) {
	if s.Log == nil {
		return
	}
	s.Log.Error(msg,
		zap.Error(err),
		zap.String("request_id", chimw.GetReqID(r.Context())),
		zap.String("id", chi.URLParam(r, "id")),
	)
}

func (s *Server) validator() *Validator {
	if s.Validator != nil {
		return s.Validator
	}
	return defaultValidator
}

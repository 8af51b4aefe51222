// Package diag exposes the registrations of a berth.Collection over HTTP.
package diag

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/xraph/berth"
)

// Registration is the JSON form of a berth.ServiceDescriptor.
type Registration struct {
	Contract       string         `json:"contract"`
	Implementation string         `json:"implementation"`
	Lifetime       berth.Lifetime `json:"lifetime"`
}

// HandlerOption configures the diagnostics handler.
type HandlerOption func(*handler)

// WithLogger reports encoding failures to logger.
func WithLogger(logger *zap.Logger) HandlerOption {
	return func(h *handler) {
		h.logger = logger
	}
}

type handler struct {
	services *berth.Collection
	logger   *zap.Logger
}

// NewHandler returns a read-only HTTP view of services:
//
//	GET /services               all registrations, optional ?lifetime=singleton
//	GET /services/{contract...} registrations of one contract, last one effective
//	GET /contracts              registered contract names in first-registration order
func NewHandler(services *berth.Collection, opts ...HandlerOption) http.Handler {
	h := &handler{
		services: services,
		logger:   zap.NewNop(),
	}

	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/services", h.listServices)
	r.Get("/services/*", h.showContract)
	r.Get("/contracts", h.listContracts)

	return r
}

func (h *handler) listServices(w http.ResponseWriter, r *http.Request) {
	query := berth.DescriptorQuery{}

	if raw := r.URL.Query().Get("lifetime"); raw != "" {
		lifetime, err := berth.ParseLifetime(raw)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		query.Lifetime = lifetime
	}

	h.writeJSON(w, http.StatusOK, toRegistrations(berth.Query(h.services, query)))
}

func (h *handler) showContract(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")

	var matches []berth.ServiceDescriptor

	for _, d := range h.services.Descriptors() {
		if d.ContractName() == name {
			matches = append(matches, d)
		}
	}

	if len(matches) == 0 {
		h.writeError(w, http.StatusNotFound, "contract '"+name+"' is not registered")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"effective":     toRegistration(matches[len(matches)-1]),
		"registrations": toRegistrations(matches),
	})
}

func (h *handler) listContracts(w http.ResponseWriter, _ *http.Request) {
	contracts := h.services.Contracts()
	names := make([]string, len(contracts))

	for i, contract := range contracts {
		names[i] = berth.QualifiedName(contract)
	}

	h.writeJSON(w, http.StatusOK, names)
}

func (h *handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("failed to encode diagnostics response", zap.Error(err))
	}
}

func toRegistration(d berth.ServiceDescriptor) Registration {
	return Registration{
		Contract:       d.ContractName(),
		Implementation: d.ImplementationName(),
		Lifetime:       d.Lifetime,
	}
}

func toRegistrations(descriptors []berth.ServiceDescriptor) []Registration {
	result := make([]Registration, len(descriptors))
	for i, d := range descriptors {
		result[i] = toRegistration(d)
	}

	return result
}

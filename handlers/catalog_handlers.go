package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/ntufar/meps/engine"
	"github.com/ntufar/meps/entities"
	"github.com/ntufar/meps/logging"
	"github.com/ntufar/meps/reference"
)

// Search responses are capped; clients narrow the term instead of paging.
const maxSearchResults = 10

// ServeCatalog returns the full medication catalog
func (h *Handler) ServeCatalog(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, r, http.StatusOK, h.dataStore.GetCatalog())
}

// ServePagedCatalog returns one page of the catalog
func (h *Handler) ServePagedCatalog(w http.ResponseWriter, r *http.Request) {
	pageNumber := chi.URLParam(r, "pageNumber")
	page, err := strconv.Atoi(pageNumber)
	if err != nil || page < 1 {
		logging.Warn("Unusual user input", "pageNumber", pageNumber)
		RespondWithError(w, http.StatusBadRequest, "Invalid page number")
		return
	}

	catalog := h.dataStore.GetCatalog()
	pageSize := 10
	start := (page - 1) * pageSize
	end := start + pageSize

	if start >= len(catalog) {
		RespondWithError(w, http.StatusNotFound, "Page not found")
		return
	}

	if end > len(catalog) {
		end = len(catalog)
	}

	totalItems := len(catalog)
	maxPage := (totalItems + pageSize - 1) / pageSize

	RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"data":       catalog[start:end],
		"page":       page,
		"pageSize":   pageSize,
		"totalItems": totalItems,
		"maxPage":    maxPage,
	})
}

// SearchCatalog searches the catalog by name or generic name
func (h *Handler) SearchCatalog(w http.ResponseWriter, r *http.Request) {
	term := chi.URLParam(r, "term")
	if term == "" {
		RespondWithError(w, http.StatusBadRequest, "Missing search term")
		return
	}

	if err := h.validator.ValidateInput(term); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	needle := strings.ToLower(term)
	results := []entities.MedicationOption{}
	for _, option := range h.dataStore.GetCatalog() {
		if strings.Contains(strings.ToLower(option.Name), needle) ||
			strings.Contains(strings.ToLower(option.GenericName), needle) ||
			strings.Contains(strings.ToLower(option.Category), needle) {
			results = append(results, option)
			if len(results) == maxSearchResults {
				break
			}
		}
	}

	// Always 200 with a results array, empty when nothing matches
	RespondWithJSON(w, r, http.StatusOK, results)
}

// FindMedicationByName looks up one catalog entry by name or generic name
func (h *Handler) FindMedicationByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		RespondWithError(w, http.StatusBadRequest, "Missing medication name")
		return
	}

	if err := h.validator.ValidateInput(name); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	catalogMap := h.dataStore.GetCatalogMap()
	option, exists := catalogMap[strings.ToLower(name)]
	if !exists {
		RespondWithError(w, http.StatusNotFound, "Medication not found")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, option)
}

// ServeCategories returns the sorted list of catalog categories
func (h *Handler) ServeCategories(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, r, http.StatusOK, reference.Categories(h.dataStore.GetCatalog()))
}

// FindInteractionsForMedication returns every interaction rule mentioning
// the given medication name
func (h *Handler) FindInteractionsForMedication(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "medication")
	if name == "" {
		RespondWithError(w, http.StatusBadRequest, "Missing medication name")
		return
	}

	if err := h.validator.ValidateInput(name); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	rules := engine.SearchInteractions(h.dataStore.GetInteractionRules(), name)
	if rules == nil {
		rules = []entities.InteractionRule{}
	}

	RespondWithJSON(w, r, http.StatusOK, rules)
}

// FindContraindicationsForMedication returns the static contraindications
// for an exact medication name
func (h *Handler) FindContraindicationsForMedication(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "medication")
	if name == "" {
		RespondWithError(w, http.StatusBadRequest, "Missing medication name")
		return
	}

	if err := h.validator.ValidateInput(name); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	rules := engine.ContraindicationsForMedication(h.dataStore.GetContraindications(), name)
	if rules == nil {
		rules = []entities.Contraindication{}
	}

	RespondWithJSON(w, r, http.StatusOK, rules)
}

// ServeCommonAllergies returns the list of frequently recorded allergies
func (h *Handler) ServeCommonAllergies(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, r, http.StatusOK, reference.CommonAllergies())
}

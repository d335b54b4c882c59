package dashboard

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/genomicmedlab/dgigo/internal/dgidb"
	"github.com/genomicmedlab/dgigo/internal/netgraph"
	"github.com/genomicmedlab/dgigo/internal/viz"
)

type apiError struct {
	Error string `json:"error"`
}

func (s *Server) index(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, indexPage)
}

func (s *Server) getVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": s.version})
}

func (s *Server) listGenes(c *gin.Context) {
	genes, err := s.client.GetGeneList(c.Request.Context())
	if err != nil {
		s.upstreamError(c, "fetching gene list", err)
		return
	}
	c.JSON(http.StatusOK, genes)
}

func (s *Server) listDrugs(c *gin.Context) {
	drugs, err := s.client.GetDrugList(c.Request.Context())
	if err != nil {
		s.upstreamError(c, "fetching drug list", err)
		return
	}
	c.JSON(http.StatusOK, drugs)
}

func (s *Server) getInteractions(c *gin.Context) {
	mode, terms, ok := s.searchParams(c)
	if !ok {
		return
	}

	interactions, err := s.client.GetInteractions(c.Request.Context(), terms, mode, dgidb.InteractionFilters{})
	if err != nil {
		s.upstreamError(c, "fetching interactions", err)
		return
	}
	c.JSON(http.StatusOK, interactions)
}

func (s *Server) getGraph(c *gin.Context) {
	mode, terms, ok := s.searchParams(c)
	if !ok {
		return
	}

	interactions, err := s.client.GetInteractions(c.Request.Context(), terms, mode, dgidb.InteractionFilters{})
	if err != nil {
		s.upstreamError(c, "fetching interactions", err)
		return
	}

	graph := netgraph.New(interactions, terms, mode)
	graph.SpringLayout()
	c.JSON(http.StatusOK, viz.Elements(graph))
}

// searchParams parses the mode and terms query parameters shared by the
// interaction and graph endpoints. It writes the error response itself
// and reports whether parsing succeeded.
func (s *Server) searchParams(c *gin.Context) (dgidb.SearchMode, []string, bool) {
	mode, err := dgidb.ParseSearchMode(c.Query("mode"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apiError{Error: err.Error()})
		return mode, nil, false
	}

	var terms []string
	for _, part := range strings.Split(c.Query("terms"), ",") {
		if part = strings.TrimSpace(part); part != "" {
			terms = append(terms, part)
		}
	}
	if len(terms) == 0 {
		c.JSON(http.StatusBadRequest, apiError{Error: "at least one search term is required"})
		return mode, nil, false
	}

	return mode, terms, true
}

func (s *Server) upstreamError(c *gin.Context, action string, err error) {
	s.logger.Errorw(action, "error", err)
	c.JSON(http.StatusBadGateway, apiError{Error: err.Error()})
}

package httpadapter

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/solver"
	"svw.info/sudoku-engine/internal/usecase"
)

// Handler exposes the engine over JSON. Every request carries the full
// grid, so the server holds no board state and needs no locking: the
// calling UI remains the single owner of its puzzle.
type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(r gin.IRouter) {
	api := r.Group("/api")
	api.GET("/example", h.handleExample)
	api.POST("/pencilmarks", h.handlePencilMarks)
	api.POST("/deduce/naked", h.handleNaked)
	api.POST("/deduce/hidden", h.handleHidden)
	api.POST("/deduce/pointing", h.handlePointing)
	api.POST("/validate", h.handleValidate)
	api.POST("/solve", h.handleSolve)
}

type boardReq struct {
	Board [9][9]uint8 `json:"board"`
}

type deduceReq struct {
	Board [9][9]uint8 `json:"board"`
	Size  int         `json:"size"`
}

// loadBoard guards the inbound boundary: every entry must be a digit in
// [0,9] before the grid reaches the engine.
func loadBoard(grid [9][9]uint8) (*domain.Board, error) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if grid[r][c] > 9 {
				return nil, fmt.Errorf("cell (%d,%d): digit %d out of range", r, c, grid[r][c])
			}
		}
	}
	b := domain.NewBoard()
	b.Load(grid)
	return b, nil
}

func (h *Handler) handleExample(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"board": domain.ExamplePuzzle()})
}

func (h *Handler) handlePencilMarks(c *gin.Context) {
	var req boardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := loadBoard(req.Board)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.UC.UpdatePencilMarks(b); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	cells := make([]domain.CellState, 0, 81)
	b.ForEachCell(func(cell *domain.Cell) {
		cells = append(cells, cell.Snapshot())
	})
	c.JSON(http.StatusOK, gin.H{"cells": cells})
}

func (h *Handler) handleNaked(c *gin.Context) {
	var req deduceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := loadBoard(req.Board)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	groups, err := h.UC.FindNakedValues(b, req.Size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

func (h *Handler) handleHidden(c *gin.Context) {
	var req deduceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := loadBoard(req.Board)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	groups, err := h.UC.FindHiddenValues(b, req.Size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

func (h *Handler) handlePointing(c *gin.Context) {
	var req boardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := loadBoard(req.Board)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reports, err := h.UC.FindPointingValues(b)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

func (h *Handler) handleValidate(c *gin.Context) {
	var req boardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := loadBoard(req.Board)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reports, err := h.UC.Validate(b)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": len(reports) == 0, "reports": reports})
}

func (h *Handler) handleSolve(c *gin.Context) {
	var req boardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := loadBoard(req.Board)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	assigned, st, err := h.UC.Solve(c.Request.Context(), b)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, solver.ErrUnsolvable) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"board":      b.Grid(),
		"assigned":   assigned,
		"nodes":      st.Nodes,
		"durationMs": st.Duration.Milliseconds(),
	})
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	httpadapter "svw.info/sudoku-engine/internal/adapters/http"
	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/engine"
	"svw.info/sudoku-engine/internal/logger"
	"svw.info/sudoku-engine/internal/solver"
	"svw.info/sudoku-engine/internal/usecase"
	"svw.info/sudoku-engine/internal/validator"
)

var (
	logLevel     string
	addr         string
	useExample   bool
	solveTimeout time.Duration

	rootCmd = &cobra.Command{
		Use:   "sudoku-engine",
		Short: "Sudoku board engine: deductions, validation and solving",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if strings.EqualFold(logLevel, "off") {
				logger.Disable()
				return
			}
			lvl, err := zerolog.ParseLevel(strings.ToLower(logLevel))
			if err != nil {
				lvl = zerolog.InfoLevel
			}
			logger.SetLevel(lvl)
		},
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the engine as a JSON API",
		RunE:  runServe,
	}

	solveCmd = &cobra.Command{
		Use:   "solve [grid]",
		Short: "Solve a puzzle given as 81 digits ('.' or '0' for empty)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSolve,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error|off")
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	solveCmd.Flags().BoolVar(&useExample, "example", false, "solve the packaged example puzzle")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 10*time.Second, "search deadline")
	rootCmd.AddCommand(serveCmd, solveCmd)
}

func newService() *usecase.Service {
	return usecase.NewService(solver.NewBacktrackingSolver(), validator.New(), engine.New())
}

// requestLogger logs method, path, status and duration for every request.
func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("dur", time.Since(start).Round(time.Millisecond)).
			Msg("http")
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logger.Logger()
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(requestLogger(log), gin.Recovery())
	httpadapter.New(newService()).Register(r)

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Info().Str("addr", addr).Msg("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("server error")
		return err
	}
	return nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	log := logger.Logger()

	var grid [9][9]uint8
	switch {
	case useExample:
		grid = domain.ExamplePuzzle()
	case len(args) == 1:
		g, err := parseGrid(args[0])
		if err != nil {
			return err
		}
		grid = g
	default:
		return fmt.Errorf("pass an 81-character grid or --example")
	}

	b := domain.NewBoard()
	b.Load(grid)
	uc := newService()

	if reports, _ := uc.Validate(b); len(reports) > 0 {
		for _, rep := range reports {
			log.Warn().
				Int("row", rep.Cell.Row).
				Int("col", rep.Cell.Col).
				Uint8("digit", rep.Digit).
				Stringer("house", rep.Kind).
				Msg("duplicate digit")
		}
		return fmt.Errorf("board has %d rule violations", len(reports))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if solveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, solveTimeout)
		defer cancel()
	}

	assigned, st, err := uc.Solve(ctx, b)
	if err != nil {
		return err
	}
	log.Info().Int("assigned", len(assigned)).Int("nodes", st.Nodes).Dur("dur", st.Duration).Msg("solved")
	printGrid(b.Grid())
	return nil
}

func parseGrid(s string) ([9][9]uint8, error) {
	var g [9][9]uint8
	clean := strings.Map(func(r rune) rune {
		if r == '\n' || r == ' ' {
			return -1
		}
		return r
	}, s)
	if len(clean) != 81 {
		return g, fmt.Errorf("grid needs 81 cells, got %d", len(clean))
	}
	for i, ch := range clean {
		switch {
		case ch == '.' || ch == '0':
			// empty
		case ch >= '1' && ch <= '9':
			g[i/9][i%9] = uint8(ch - '0')
		default:
			return g, fmt.Errorf("bad cell %q at position %d", ch, i)
		}
	}
	return g, nil
}

func printGrid(g [9][9]uint8) {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if c > 0 {
				sb.WriteByte(' ')
				if c%3 == 0 {
					sb.WriteByte(' ')
				}
			}
			sb.WriteByte('0' + g[r][c])
		}
		sb.WriteByte('\n')
		if r == 2 || r == 5 {
			sb.WriteByte('\n')
		}
	}
	fmt.Print(sb.String())
}

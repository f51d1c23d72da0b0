// Command gkserver is a gin HTTP gateway over the stabilizer core: it
// lets a remote client create a simulator instance, stream batches of
// operations into it, and read back the measurement buffer, without
// linking against qc/simulator directly.
package main

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kegliz/gkstab/internal/logger"
	"github.com/kegliz/gkstab/qc/ops"
	"github.com/kegliz/gkstab/qc/simulator"
)

// opRequest is the wire shape of one queued operation. Kind must be
// one of INIT, X, Y, Z, H, S, SDG, CX, MEAS (case-insensitive); Q0/Q1/
// Slot are interpreted per-kind exactly as ops.Op documents.
type opRequest struct {
	Kind string `json:"kind" binding:"required"`
	Q0   int    `json:"q0"`
	Q1   int    `json:"q1"`
	Slot int    `json:"slot"`
}

func (r opRequest) toOp() (ops.Op, error) {
	switch strings.ToUpper(r.Kind) {
	case "INIT":
		return ops.Init(), nil
	case "X":
		return ops.Gate1(ops.OpX, r.Q0), nil
	case "Y":
		return ops.Gate1(ops.OpY, r.Q0), nil
	case "Z":
		return ops.Gate1(ops.OpZ, r.Q0), nil
	case "H":
		return ops.Gate1(ops.OpH, r.Q0), nil
	case "S":
		return ops.Gate1(ops.OpS, r.Q0), nil
	case "SDG":
		return ops.Gate1(ops.OpSdg, r.Q0), nil
	case "CX", "CNOT":
		return ops.CX(r.Q0, r.Q1), nil
	case "MEAS", "MEASURE":
		return ops.Measure(r.Q0, r.Slot), nil
	default:
		return ops.Op{}, fmt.Errorf("unknown op kind %q", r.Kind)
	}
}

// instance pairs a StabilizerSimulator with a mutex, since a gin
// handler pool may service concurrent requests for the same id but the
// core forbids concurrent access to one simulator (spec.md §5).
type instance struct {
	mu  sync.Mutex
	sim *simulator.StabilizerSimulator
}

type server struct {
	mu   sync.RWMutex
	sims map[string]*instance
	log  *logger.Logger
}

func newServer(verbose bool) *server {
	return &server{
		sims: make(map[string]*instance),
		log:  logger.NewLogger(logger.LoggerOptions{Debug: verbose}),
	}
}

func (s *server) get(id string) (*instance, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inst, ok := s.sims[id]
	return inst, ok
}

// correlationID attaches a fresh google/uuid to every request's log
// lines, so a single client-visible request can be traced across
// gkserver's structured log output.
func correlationID(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()
		c.Set("request_id", id)
		sub := log.With().Str("request_id", id).Logger()
		c.Set("log", &sub)
		c.Next()
	}
}

func (s *server) createSimulator(c *gin.Context) {
	var req struct {
		N    int    `json:"n" binding:"required"`
		Seed uint64 `json:"seed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.N <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "n must be positive"})
		return
	}

	id := uuid.New().String()
	s.mu.Lock()
	s.sims[id] = &instance{sim: simulator.NewSeeded(req.N, req.Seed)}
	s.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (s *server) applyOps(c *gin.Context) {
	inst, ok := s.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such simulator"})
		return
	}

	var reqs []opRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	batch := make([]ops.Op, 0, len(reqs))
	for _, r := range reqs {
		op, err := r.toOp()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		batch = append(batch, op)
	}

	inst.mu.Lock()
	defer inst.mu.Unlock()
	inst.sim.Send(batch)

	c.JSON(http.StatusOK, gin.H{"applied": len(batch)})
}

func (s *server) result(c *gin.Context) {
	inst, ok := s.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such simulator"})
		return
	}

	inst.mu.Lock()
	buf := inst.sim.MakeBuffer()
	inst.sim.Receive(buf)
	inst.mu.Unlock()

	bits := make([]byte, buf.Len())
	for i := 0; i < buf.Len(); i++ {
		if buf.Get(i) {
			bits[i] = '1'
		} else {
			bits[i] = '0'
		}
	}
	c.JSON(http.StatusOK, gin.H{"bits": string(bits)})
}

func newRouter(s *server) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(correlationID(s.log))

	v1 := r.Group("/v1")
	v1.POST("/simulators", s.createSimulator)
	v1.POST("/simulators/:id/ops", s.applyOps)
	v1.GET("/simulators/:id/result", s.result)

	return r
}

func main() {
	s := newServer(false)
	r := newRouter(s)
	s.log.Info().Msg("gkserver listening on :8080")
	if err := r.Run(":8080"); err != nil {
		s.log.Fatal().Err(err).Msg("gkserver exited")
	}
}

/*
	This file implements the coordinator side of a distributed count using gorpc.
*/

package rpc

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/janelia-flyem/blockdup/dvid"
	"github.com/janelia-flyem/blockdup/engine"
	"github.com/twinj/uuid"
	"github.com/valyala/gorpc"
)

const (
	// The default address the coordinator listens on for workers.
	DefaultAddress = "localhost:8002"
)

var (
	ErrRunMismatch     = errors.New("report is for a different run")
	ErrNotStarted      = errors.New("coordinator not started")
	ErrAlreadyStarted  = errors.New("coordinator already started")
	ErrBadProcessCount = errors.New("need at least one worker process")
)

var (
	sendParams = "Params"
	sendReduce = "Reduce"
)

// lingerDelay gives the last worker time to receive its acknowledgment before
// the server closes connections.
var lingerDelay = 250 * time.Millisecond

// NewRunID returns a fresh hex run identifier.
func NewRunID() string {
	return fmt.Sprintf("%x", uuid.NewV4().Bytes())
}

type handler interface {
	encodedParams() ([]byte, error)
	report(req []byte) error
}

func newDispatcher(h handler) *gorpc.Dispatcher {
	d := gorpc.NewDispatcher()
	d.AddFunc(sendParams, func() ([]byte, error) { return h.encodedParams() })
	d.AddFunc(sendReduce, func(req []byte) error { return h.report(req) })
	return d
}

// Coordinator broadcasts run parameters to worker processes and sums the partial
// pair counts they report.  Each rank must report exactly once.
type Coordinator struct {
	address   string
	params    Params
	encoded   []byte
	collector *engine.Collector

	mu     sync.Mutex
	server *gorpc.Server
}

// NewCoordinator returns a coordinator for the given parameters.  A run ID is
// assigned if the parameters have none.
func NewCoordinator(address string, p Params) (*Coordinator, error) {
	if p.Processes < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadProcessCount, p.Processes)
	}
	if p.RunID == "" {
		p.RunID = NewRunID()
	}
	encoded, err := p.MarshalMsg(nil)
	if err != nil {
		return nil, err
	}
	return &Coordinator{
		address:   address,
		params:    p,
		encoded:   encoded,
		collector: engine.NewCollector(p.Processes),
	}, nil
}

// Params returns the parameters sent to every worker.
func (c *Coordinator) Params() Params {
	return c.params
}

// Address returns the address workers connect to.
func (c *Coordinator) Address() string {
	return c.address
}

// Start begins serving workers without blocking.
func (c *Coordinator) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.server != nil {
		return ErrAlreadyStarted
	}
	gorpc.SetErrorLogger(dvid.Errorf) // Send gorpc errors to appropriate error log.

	s := gorpc.NewTCPServer(c.address, newDispatcher(c).NewHandlerFunc())
	if err := s.Start(); err != nil {
		return fmt.Errorf("cannot serve workers on %s: %v", c.address, err)
	}
	c.server = s
	dvid.Infof("Coordinating run %s with %d workers on %s\n", c.params.RunID, c.params.Processes, c.address)
	return nil
}

// Wait blocks until every worker has reported or the context ends.
func (c *Coordinator) Wait(ctx context.Context) ([]engine.Partial, error) {
	c.mu.Lock()
	started := c.server != nil
	c.mu.Unlock()
	if !started {
		return nil, ErrNotStarted
	}
	return c.collector.Wait(ctx)
}

// Stop halts the server.
func (c *Coordinator) Stop() {
	c.mu.Lock()
	s := c.server
	c.server = nil
	c.mu.Unlock()
	if s == nil {
		return
	}
	time.Sleep(lingerDelay)
	s.Stop()
	dvid.Infof("Halted coordinator on %s.\n", c.address)
}

func (c *Coordinator) encodedParams() ([]byte, error) {
	return c.encoded, nil
}

func (c *Coordinator) report(req []byte) error {
	var r Report
	if _, err := r.UnmarshalMsg(req); err != nil {
		return fmt.Errorf("bad report: %v", err)
	}
	if r.RunID != c.params.RunID {
		return fmt.Errorf("%w: got %q, running %q", ErrRunMismatch, r.RunID, c.params.RunID)
	}
	p := engine.Partial{
		Rank:        r.Rank,
		Pairs:       r.Pairs,
		Blocks:      r.Blocks,
		Unique:      r.Unique,
		LedgerBytes: r.LedgerBytes,
	}
	if err := c.collector.Reduce(context.Background(), p); err != nil {
		dvid.Warningf("Rejected report from rank %d: %v\n", r.Rank, err)
		return err
	}
	dvid.Infof("Rank %d reported %d pairs over %d blocks, %d workers outstanding\n",
		r.Rank, r.Pairs, r.Blocks, c.collector.Remaining())
	return nil
}

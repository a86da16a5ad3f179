/*
	This file implements the worker side of a distributed count using gorpc.
*/

package rpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/janelia-flyem/blockdup/engine"
	"github.com/valyala/gorpc"
)

var ErrNoParams = errors.New("run parameters not yet fetched")

const (
	defaultCallTimeout = 20 * time.Second
	paramsCallTimeout  = 2 * time.Second
	paramsRetryDelay   = 100 * time.Millisecond
)

// stub handler for the client-side dispatcher, which only needs the function signatures.
type noHandler struct{}

func (noHandler) encodedParams() ([]byte, error) { return nil, ErrNotStarted }
func (noHandler) report([]byte) error { return ErrNotStarted }

// Client is a worker's connection to a coordinator.  It satisfies engine.Reducer
// once FetchParams has succeeded.
type Client struct {
	c     *gorpc.Client
	dc    *gorpc.DispatcherClient
	runID string
}

// NewClient returns a client for the coordinator at addr.  Connection happens
// in the background.
func NewClient(addr string) (*Client, error) {
	c := gorpc.NewTCPClient(addr)
	c.Start()
	dc := newDispatcher(noHandler{}).NewFuncClient(c)
	if dc == nil {
		c.Stop()
		return nil, fmt.Errorf("can't create dispatcher client")
	}
	return &Client{c: c, dc: dc}, nil
}

// FetchParams asks the coordinator for the run parameters, retrying until the
// coordinator answers or the context ends.
func (c *Client) FetchParams(ctx context.Context) (Params, error) {
	for {
		timeout := paramsCallTimeout
		if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
			timeout = time.Until(deadline)
		}
		if timeout <= 0 {
			return Params{}, fmt.Errorf("no parameters from coordinator: %w", context.DeadlineExceeded)
		}
		resp, err := c.dc.CallTimeout(sendParams, nil, timeout)
		if err == nil {
			buf, ok := resp.([]byte)
			if !ok {
				return Params{}, fmt.Errorf("coordinator returned %T instead of parameters", resp)
			}
			var p Params
			if _, err := p.UnmarshalMsg(buf); err != nil {
				return Params{}, fmt.Errorf("bad parameters from coordinator: %v", err)
			}
			c.runID = p.RunID
			return p, nil
		}
		select {
		case <-ctx.Done():
			return Params{}, fmt.Errorf("no parameters from coordinator (%v): %w", err, ctx.Err())
		case <-time.After(paramsRetryDelay):
		}
	}
}

// Reduce sends the worker's partial result to the coordinator.
func (c *Client) Reduce(ctx context.Context, p engine.Partial) error {
	if c.runID == "" {
		return ErrNoParams
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	r := Report{
		RunID:       c.runID,
		Rank:        p.Rank,
		Pairs:       p.Pairs,
		Blocks:      p.Blocks,
		Unique:      p.Unique,
		LedgerBytes: p.LedgerBytes,
	}
	buf, err := r.MarshalMsg(nil)
	if err != nil {
		return err
	}
	timeout := defaultCallTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	if _, err := c.dc.CallTimeout(sendReduce, buf, timeout); err != nil {
		return fmt.Errorf("rank %d report rejected: %v", p.Rank, err)
	}
	return nil
}

// Close disconnects from the coordinator.
func (c *Client) Close() {
	c.c.Stop()
}

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/bountylab/bounty-contract/rpc/bounty"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
)

const iteratorBatchSize = 100

// wrapper over the Neo RPC client providing read access to the deployed
// Bounty contract.
type remoteBlockchain struct {
	rpc *rpcclient.Client
	inv *invoker.Invoker
}

// newRemoteBlockChain dials Neo RPC server and returns remoteBlockchain based
// on the opened connection. Connection and all requests are done within 15s
// timeout.
func newRemoteBlockChain(blockChainRPCEndpoint string) (*remoteBlockchain, error) {
	c, err := rpcclient.New(context.Background(), blockChainRPCEndpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	err = c.Init()
	if err != nil {
		return nil, fmt.Errorf("RPC client init: %w", err)
	}

	return &remoteBlockchain{
		rpc: c,
		inv: invoker.New(c, nil),
	}, nil
}

func (x *remoteBlockchain) close() {
	x.rpc.Close()
}

// iterateBounties traverses the contract's bounty iterator in fixed-size
// batches and passes every deserialized bounty into f. iterateBounties breaks
// on any f's error and returns it.
func (x *remoteBlockchain) iterateBounties(reader *bounty.ContractReader, f func(*bounty.BountyBounty) error) error {
	sessionID, iter, err := reader.IterateBounties()
	if err != nil {
		return fmt.Errorf("open bounty iterator: %w", err)
	}

	defer func() {
		_ = x.inv.TerminateSession(sessionID)
	}()

	for {
		items, err := x.inv.TraverseIterator(sessionID, &iter, iteratorBatchSize)
		if err != nil {
			return fmt.Errorf("traverse bounty iterator: %w", err)
		}

		for i := range items {
			var b bounty.BountyBounty

			err = b.FromStackItem(items[i])
			if err != nil {
				return fmt.Errorf("deserialize bounty: %w", err)
			}

			err = f(&b)
			if err != nil {
				return err
			}
		}

		if len(items) < iteratorBatchSize {
			return nil
		}
	}
}

package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/bountylab/bounty-contract/rpc/bounty"
	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	contractAddr := flag.String("contract", "", "LE hash of the deployed Bounty contract")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *contractAddr == "":
		log.Fatal("missing Bounty contract hash")
	}

	contractHash, err := util.Uint160DecodeStringLE(*contractAddr)
	if err != nil {
		log.Fatal(fmt.Errorf("decode Bounty contract hash: %w", err))
	}

	err = _dump(*neoRPCEndpoint, contractHash)
	if err != nil {
		log.Fatal(err)
	}
}

func _dump(neoBlockchainRPCEndpoint string, contractHash util.Uint160) error {
	b, err := newRemoteBlockChain(neoBlockchainRPCEndpoint)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}

	defer b.close()

	reader := bounty.NewReader(b.inv, contractHash)

	version, err := reader.Version()
	if err != nil {
		return fmt.Errorf("get contract version: %w", err)
	}
	owner, err := reader.Owner()
	if err != nil {
		return fmt.Errorf("get platform owner: %w", err)
	}
	count, err := reader.BountyCount()
	if err != nil {
		return fmt.Errorf("get bounty count: %w", err)
	}
	fee, err := reader.FeeCollected()
	if err != nil {
		return fmt.Errorf("get collected fee: %w", err)
	}

	fmt.Printf("Bounty contract %s (version %s)\n", contractHash.StringLE(), version)
	fmt.Printf("owner: %s, bounties: %s, fee collected: %s\n", owner.StringLE(), count, fee)

	return b.iterateBounties(reader, func(bnt *bounty.BountyBounty) error {
		return printBounty(reader, bnt)
	})
}

func printBounty(reader *bounty.ContractReader, b *bounty.BountyBounty) error {
	status := "active"
	switch {
	case len(b.Winners) > 0:
		status = "resolved"
	case !b.Active:
		status = "cancelled"
	}

	fmt.Printf("bounty #%s [%s] creator=%s content=%s\n",
		b.ID, status, b.Creator.StringLE(), base58.Encode(b.ContentID))
	fmt.Printf("  deadlines: submission=%s result=%s, min participants: %s, winners: %s, prizes: %v\n",
		b.Deadline, b.ResultDeadline, b.MinParticipants, b.TotalWinners, b.Prizes)

	for i := range b.Winners {
		fmt.Printf("  winner #%d: %s\n", i, b.Winners[i].StringLE())
	}

	subs, err := reader.GetBountySubmissions(b.ID)
	if err != nil {
		return fmt.Errorf("get submissions of bounty #%s: %w", b.ID, err)
	}

	for i := range subs {
		fmt.Printf("  submission #%d: participant=%s content=%s created=%s\n",
			i, subs[i].Participant.StringLE(), base58.Encode(subs[i].ContentID), subs[i].CreatedAt)
	}

	return nil
}

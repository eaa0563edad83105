package config

import (
	"fmt"
	"time"
)

// Network identifies which deployment profile a node starts with. It picks
// the consensus Parameters, genesis contents and peer-discovery seeds a
// Config composes.
type Network uint8

const (
	NetworkDevnet Network = iota
	NetworkTestnet
	NetworkMainnet
)

func (n Network) String() string {
	switch n {
	case NetworkDevnet:
		return "devnet"
	case NetworkTestnet:
		return "testnet"
	case NetworkMainnet:
		return "mainnet"
	default:
		return "unknown"
	}
}

// GenesisParameters are the values baked into a chain's genesis block: the
// chain identity, the epoch/slot schedule the block producer's VRF
// evaluator walks, and the confirmation depth the transition-frontier sync
// machine requires before treating a root as final.
type GenesisParameters struct {
	ChainID string

	// SlotTime is the duration of one block-producer slot.
	SlotTime time.Duration
	// SlotsPerEpoch is the number of slots in one epoch. The VRF
	// evaluator does not read it: its walk is bounded by the EndSlot of
	// the BeginVRFEvaluation action.
	SlotsPerEpoch uint64
	// ConfirmationDepth is how many confirmed blocks back from the best tip
	// the root is considered final and prunable.
	ConfirmationDepth uint64

	// SeedPeers are the bootstrap peer addresses a fresh node dials first.
	SeedPeers []string
}

func (g GenesisParameters) valid() error {
	if g.ChainID == "" {
		return ErrInvalidChainID
	}
	if g.SlotTime < time.Millisecond {
		return ErrInvalidSlotTime
	}
	if g.SlotsPerEpoch < 1 {
		return ErrInvalidEpochSlots
	}
	if g.ConfirmationDepth < 1 {
		return ErrInvalidConfirmDepth
	}
	return nil
}

// Config is the process-wide configuration a node is constructed from: the
// network profile it belongs to, the genesis it was seeded with, and the
// consensus Parameters sizing its sync machine's quorum poll. It is
// selected once at startup (from CLI flags or a config file, depending on
// the embedding binary) and passed down by value; nothing in the dispatch
// core mutates it after construction.
type Config struct {
	Network    Network
	Genesis    GenesisParameters
	Consensus  Parameters
	EventQueue int // EventSource channel buffer size
}

func (c Config) Valid() error {
	if err := c.Genesis.valid(); err != nil {
		return err
	}
	if err := c.Consensus.Valid(); err != nil {
		return err
	}
	if c.EventQueue < 1 {
		return fmt.Errorf("config: event queue size must be >= 1, got %d", c.EventQueue)
	}
	return nil
}

// DevnetConfig returns the single-node local development profile: short
// slots, shallow epochs, no seed peers.
func DevnetConfig() Config {
	return Config{
		Network: NetworkDevnet,
		Genesis: GenesisParameters{
			ChainID:           "devnet",
			SlotTime:          10 * time.Millisecond,
			SlotsPerEpoch:     64,
			ConfirmationDepth: 2,
		},
		Consensus:  LocalParams(),
		EventQueue: 256,
	}
}

// TestnetConfig returns the public testnet profile.
func TestnetConfig() Config {
	return Config{
		Network: NetworkTestnet,
		Genesis: GenesisParameters{
			ChainID:           "testnet",
			SlotTime:          100 * time.Millisecond,
			SlotsPerEpoch:     7140,
			ConfirmationDepth: 30,
			SeedPeers:         []string{"seed-1.testnet.example:3000", "seed-2.testnet.example:3000"},
		},
		Consensus:  TestnetParams(),
		EventQueue: 1024,
	}
}

// MainnetConfig returns the production mainnet profile.
func MainnetConfig() Config {
	return Config{
		Network: NetworkMainnet,
		Genesis: GenesisParameters{
			ChainID:           "mainnet",
			SlotTime:          200 * time.Millisecond,
			SlotsPerEpoch:     7140,
			ConfirmationDepth: 290,
			SeedPeers:         []string{"seed-1.mainnet.example:3000", "seed-2.mainnet.example:3000", "seed-3.mainnet.example:3000"},
		},
		Consensus:  MainnetParams(),
		EventQueue: 4096,
	}
}

// ForNetwork resolves the default Config for a named network profile.
func ForNetwork(n Network) (Config, error) {
	switch n {
	case NetworkDevnet:
		return DevnetConfig(), nil
	case NetworkTestnet:
		return TestnetConfig(), nil
	case NetworkMainnet:
		return MainnetConfig(), nil
	default:
		return Config{}, ErrUnknownNetwork
	}
}

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDevnetConfigValid(t *testing.T) {
	require.NoError(t, DevnetConfig().Valid())
}

func TestTestnetConfigValid(t *testing.T) {
	require.NoError(t, TestnetConfig().Valid())
}

func TestMainnetConfigValid(t *testing.T) {
	require.NoError(t, MainnetConfig().Valid())
}

func TestForNetworkUnknown(t *testing.T) {
	_, err := ForNetwork(Network(99))
	require.ErrorIs(t, err, ErrUnknownNetwork)
}

func TestConfigInvalidGenesisChainID(t *testing.T) {
	c := DevnetConfig()
	c.Genesis.ChainID = ""
	require.ErrorIs(t, c.Valid(), ErrInvalidChainID)
}

func TestConfigInvalidEventQueue(t *testing.T) {
	c := DevnetConfig()
	c.EventQueue = 0
	require.Error(t, c.Valid())
}

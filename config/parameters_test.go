// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParametersValid(t *testing.T) {
	tests := []struct {
		name          string
		params        Parameters
		expectedError error
	}{
		{
			name:   "default params valid",
			params: DefaultParameters,
		},
		{
			name: "invalid K",
			params: func() Parameters {
				p := DefaultParameters
				p.K = 0
				return p
			}(),
			expectedError: ErrInvalidK,
		},
		{
			name: "invalid alpha",
			params: func() Parameters {
				p := DefaultParameters
				p.Alpha = 0.1
				return p
			}(),
			expectedError: ErrInvalidAlpha,
		},
		{
			name: "invalid beta",
			params: func() Parameters {
				p := DefaultParameters
				p.Beta = 0
				return p
			}(),
			expectedError: ErrInvalidBeta,
		},
		{
			name: "block time too low",
			params: func() Parameters {
				p := DefaultParameters
				p.BlockTime = time.Microsecond
				return p
			}(),
			expectedError: ErrBlockTimeTooLow,
		},
		{
			name: "round timeout below block time",
			params: func() Parameters {
				p := DefaultParameters
				p.RoundTO = p.BlockTime / 2
				return p
			}(),
			expectedError: ErrRoundTimeoutTooLow,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.params.Valid()
			if test.expectedError != nil {
				require.ErrorIs(t, err, test.expectedError)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPresetParamsAreValid(t *testing.T) {
	for name, params := range map[string]Parameters{
		"mainnet": MainnetParams(),
		"testnet": TestnetParams(),
		"local":   LocalParams(),
		"xchain":  XChainParams(),
	} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, params.Valid())
		})
	}
}

func TestGetParametersByName(t *testing.T) {
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			_, err := GetParametersByName(name)
			require.NoError(t, err)
		})
	}

	_, err := GetParametersByName("not-a-preset")
	require.Error(t, err)
}

func TestWithBlockTime(t *testing.T) {
	p := DefaultParameters.WithBlockTime(5 * time.Millisecond)
	require.Equal(t, 5*time.Millisecond, p.BlockTime)
	require.NoError(t, p.Valid())
}

// Copyright 2020 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package modules

import (
	"testing"

	"github.com/ChainSafe/grandpa-bridge/dot/types"
	"github.com/ChainSafe/grandpa-bridge/lib/common"
	"github.com/ChainSafe/grandpa-bridge/lib/crypto/ed25519"
	"github.com/ChainSafe/grandpa-bridge/lib/grandpa/justification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestGrandpaModule_VerifyJustification(t *testing.T) {
	t.Parallel()

	kr := newTestKeyring(t)
	headers := newTestHeaders(2)
	target := headers[0]
	module := NewGrandpaModule(newTestContext(t, kr))

	testCases := map[string]struct {
		request    *JustificationRequest
		response   *VerifyJustificationResponse
		errWrapped error
		errMessage string
	}{
		"valid": {
			request: &JustificationRequest{
				Justification: newEncodedJustification(t, target, headers[1],
					[]*ed25519.Keypair{kr.KeyAlice, kr.KeyBob, kr.KeyCharlie}, headers[1]),
				TargetHash:   target.Hash(),
				TargetNumber: uint32(target.Number),
			},
			response: &VerifyJustificationResponse{Valid: true},
		},
		"unknown_authority": {
			request: &JustificationRequest{
				Justification: newEncodedJustification(t, target, target,
					[]*ed25519.Keypair{kr.KeyAlice, kr.KeyDave, kr.KeyBob, kr.KeyCharlie}),
				TargetHash:   target.Hash(),
				TargetNumber: uint32(target.Number),
			},
			response: &VerifyJustificationResponse{
				Error:          "precommit #1: vote by unknown authority",
				PrecommitIndex: intPtr(1),
			},
		},
		"insufficient_weight": {
			request: &JustificationRequest{
				Justification: newEncodedJustification(t, target, target,
					[]*ed25519.Keypair{kr.KeyAlice, kr.KeyBob}),
				TargetHash:   target.Hash(),
				TargetNumber: uint32(target.Number),
			},
			response: &VerifyJustificationResponse{
				Error: "not enough signed weight: 2 of 3 required",
			},
		},
		"wrong_target_number": {
			request: &JustificationRequest{
				Justification: newEncodedJustification(t, target, target,
					[]*ed25519.Keypair{kr.KeyAlice, kr.KeyBob, kr.KeyCharlie}),
				TargetHash:   target.Hash(),
				TargetNumber: uint32(target.Number) + 1,
			},
			response: &VerifyJustificationResponse{
				Error: "justification is finalizing unexpected header: commit target is " +
					target.ID().String() + ", expected " +
					types.HeaderID{Hash: target.Hash(), Number: target.Number + 1}.String(),
			},
		},
		"not_hex": {
			request: &JustificationRequest{
				Justification: "0xzz",
				TargetHash:   target.Hash(),
			},
			response:   &VerifyJustificationResponse{},
			errWrapped: ErrDecodingJustification,
			errMessage: "cannot decode justification: encoding/hex: invalid byte: U+007A 'z'",
		},
		"trailing_bytes": {
			request: &JustificationRequest{
				Justification: newEncodedJustification(t, target, target,
					[]*ed25519.Keypair{kr.KeyAlice, kr.KeyBob, kr.KeyCharlie}) + "00",
				TargetHash: target.Hash(),
			},
			response:   &VerifyJustificationResponse{},
			errWrapped: ErrDecodingJustification,
			errMessage: "cannot decode justification: trailing bytes after justification: 1 bytes",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			res := new(VerifyJustificationResponse)
			err := module.VerifyJustification(nil, testCase.request, res)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
			assert.Equal(t, testCase.response, res)
		})
	}
}

func TestGrandpaModule_OptimizeJustification(t *testing.T) {
	t.Parallel()

	kr := newTestKeyring(t)
	headers := newTestHeaders(3)
	target := headers[0]
	context := newTestContext(t, kr)
	module := NewGrandpaModule(context)

	request := &JustificationRequest{
		Justification: newEncodedJustification(t, target, target,
			[]*ed25519.Keypair{kr.KeyEve, kr.KeyAlice, kr.KeyBob, kr.KeyCharlie}, headers[2], headers[1]),
		TargetHash:   target.Hash(),
		TargetNumber: uint32(target.Number),
	}

	res := new(OptimizeJustificationResponse)
	err := module.OptimizeJustification(nil, request, res)
	require.NoError(t, err)

	assert.Equal(t, []int{0}, res.DroppedPrecommits)
	assert.Equal(t, []int{}, res.DuplicateAncestries)
	assert.ElementsMatch(t, []common.Hash{headers[1].Hash(), headers[2].Hash()}, res.RedundantAncestries)

	expected := newEncodedJustification(t, target, target,
		[]*ed25519.Keypair{kr.KeyAlice, kr.KeyBob, kr.KeyCharlie})
	assert.Equal(t, expected, res.Justification)

	verdict := new(VerifyJustificationResponse)
	err = module.VerifyJustification(nil, &JustificationRequest{
		Justification: res.Justification,
		TargetHash:    target.Hash(),
		TargetNumber:  uint32(target.Number),
	}, verdict)
	require.NoError(t, err)
	assert.True(t, verdict.Valid)

	// not enough weight survives
	request.Justification = newEncodedJustification(t, target, target,
		[]*ed25519.Keypair{kr.KeyEve, kr.KeyAlice, kr.KeyBob})
	err = module.OptimizeJustification(nil, request, new(OptimizeJustificationResponse))
	assert.ErrorIs(t, err, justification.ErrInsufficientSignedWeight)
}

func TestGrandpaModule_AuthoritySet(t *testing.T) {
	t.Parallel()

	kr := newTestKeyring(t)
	module := NewGrandpaModule(newTestContext(t, kr))

	res := new(AuthoritySetResponse)
	err := module.AuthoritySet(nil, nil, res)
	require.NoError(t, err)

	assert.Equal(t, testSetID, res.SetID)
	assert.Equal(t, uint64(3), res.TotalWeight)
	assert.Equal(t, uint64(3), res.Threshold)
	assert.ElementsMatch(t,
		types.NewAuthorityListFromKeypairs(1, kr.KeyAlice, kr.KeyBob, kr.KeyCharlie),
		res.Authorities)
}

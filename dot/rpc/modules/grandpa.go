// Copyright 2020 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package modules

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ChainSafe/grandpa-bridge/dot/types"
	"github.com/ChainSafe/grandpa-bridge/internal/log"
	"github.com/ChainSafe/grandpa-bridge/lib/common"
	"github.com/ChainSafe/grandpa-bridge/lib/grandpa/justification"
	"github.com/google/uuid"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "rpc"))

// GrandpaModule verifies GRANDPA justifications against a fixed
// authority set.
type GrandpaModule struct {
	context justification.VerificationContext
}

// NewGrandpaModule creates a new Grandpa rpc module.
func NewGrandpaModule(context justification.VerificationContext) *GrandpaModule {
	return &GrandpaModule{
		context: context,
	}
}

// JustificationRequest holds a hex encoded SCALE justification and the
// block it is expected to finalize.
type JustificationRequest struct {
	Justification string      `json:"justification" validate:"required"`
	TargetHash    common.Hash `json:"targetHash" validate:"required"`
	TargetNumber  uint32      `json:"targetNumber"`
}

func (r *JustificationRequest) target() types.HeaderID {
	return types.HeaderID{Hash: r.TargetHash, Number: types.BlockNumber(r.TargetNumber)}
}

func (r *JustificationRequest) decode() (*justification.GrandpaJustification[*types.Header], error) {
	encoded, err := common.HexToBytes(r.Justification)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDecodingJustification, err)
	}

	decoded, err := justification.DecodeJustification(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDecodingJustification, err)
	}
	return decoded, nil
}

// VerifyJustificationResponse is the verdict on a justification.
// PrecommitIndex is set when a single precommit made it invalid.
type VerifyJustificationResponse struct {
	Valid          bool   `json:"valid"`
	Error          string `json:"error,omitempty"`
	PrecommitIndex *int   `json:"precommitIndex,omitempty"`
}

// VerifyJustification strictly verifies the justification against the
// authority set of the module. An invalid justification is not an RPC
// error, only an undecodable one is.
func (gm *GrandpaModule) VerifyJustification(_ *http.Request, req *JustificationRequest,
	res *VerifyJustificationResponse) error {
	requestID := uuid.NewString()
	decoded, err := req.decode()
	if err != nil {
		logger.Debugf("request %s: %s", requestID, err)
		return err
	}

	target := req.target()
	err = justification.VerifyJustification(target, gm.context, *decoded)
	if err != nil {
		logger.Debugf("request %s: justification for %s is invalid: %s", requestID, target, err)
		res.Error = err.Error()
		var precommitErr *justification.PrecommitError
		if errors.As(err, &precommitErr) {
			index := precommitErr.Index
			res.PrecommitIndex = &index
		}
		return nil
	}

	logger.Debugf("request %s: justification for %s is valid", requestID, target)
	res.Valid = true
	return nil
}

// OptimizeJustificationResponse is the optimized justification, hex
// encoded, along with what was removed from it.
type OptimizeJustificationResponse struct {
	Justification       string        `json:"justification"`
	DroppedPrecommits   []int         `json:"droppedPrecommits"`
	DuplicateAncestries []int         `json:"duplicateAncestries"`
	RedundantAncestries []common.Hash `json:"redundantAncestries"`
}

// OptimizeJustification drops the precommits and ancestry headers that
// make the justification fail strict verification. It fails if not
// enough signed weight remains.
func (gm *GrandpaModule) OptimizeJustification(_ *http.Request, req *JustificationRequest,
	res *OptimizeJustificationResponse) error {
	requestID := uuid.NewString()
	decoded, err := req.decode()
	if err != nil {
		logger.Debugf("request %s: %s", requestID, err)
		return err
	}

	report, err := justification.VerifyAndOptimizeJustification(req.target(), gm.context, decoded)
	if err != nil {
		logger.Debugf("request %s: cannot optimize justification: %s", requestID, err)
		return err
	}

	encoded, err := decoded.Bytes()
	if err != nil {
		return fmt.Errorf("encoding optimized justification: %w", err)
	}

	if reasons := report.Report(); reasons != nil {
		logger.Tracef("request %s: %s", requestID, reasons)
	}

	res.Justification = common.BytesToHex(encoded)
	res.DroppedPrecommits = nonNil(report.DroppedPrecommits)
	res.DuplicateAncestries = nonNil(report.DuplicateAncestries)
	res.RedundantAncestries = nonNil(report.RedundantAncestries)
	return nil
}

// AuthoritySetResponse describes the authority set justifications are
// verified against.
type AuthoritySetResponse struct {
	SetID       uint64            `json:"setId"`
	TotalWeight uint64            `json:"totalWeight"`
	Threshold   uint64            `json:"threshold"`
	Authorities []types.Authority `json:"authorities"`
}

// AuthoritySet returns the authority set of the module.
func (gm *GrandpaModule) AuthoritySet(_ *http.Request, _ *EmptyRequest, res *AuthoritySetResponse) error {
	voterSet := gm.context.VoterSet
	res.SetID = gm.context.SetID
	res.TotalWeight = uint64(voterSet.TotalWeight())
	res.Threshold = uint64(voterSet.Threshold())

	voters := voterSet.Voters()
	res.Authorities = make([]types.Authority, len(voters))
	for i, voter := range voters {
		res.Authorities[i] = types.NewAuthority(voter.ID, uint64(voter.Weight))
	}
	return nil
}

// nonNil makes empty lists marshal to [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

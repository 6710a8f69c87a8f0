package stake

import (
	"context"
	"errors"
	"math/big"
	"strings"

	stakev1 "github.com/louisbranch/stakeledger/api/stake/v1"
	"github.com/louisbranch/stakeledger/internal/services/stake/domain"
	"github.com/louisbranch/stakeledger/internal/services/stake/ledger"
	"github.com/louisbranch/stakeledger/internal/services/stake/unit"
)

// UnitService implements stake.v1.UnitService over the in-process units the
// server hosts. It exists so development clients can fund and approve
// accounts before staking.
type UnitService struct {
	stakev1.UnimplementedUnitServiceServer
	ledger *ledger.Ledger
	units  unit.Resolver
}

// NewUnitService creates a UnitService. Minting is gated on the ledger's admin1.
func NewUnitService(l *ledger.Ledger, units unit.Resolver) *UnitService {
	return &UnitService{ledger: l, units: units}
}

// Mint credits an account. Admin1 only.
func (s *UnitService) Mint(ctx context.Context, in *stakev1.MintRequest) (*stakev1.MintResponse, error) {
	roles, err := s.ledger.Roles(ctx)
	if err != nil {
		return nil, handleError(ctx, err)
	}
	if err := roles.RequireAdmin1(callerFromContext(ctx)); err != nil {
		return nil, handleError(ctx, err)
	}
	amount, err := domain.ParseAmount(in.GetAmount())
	if err != nil {
		return nil, handleError(ctx, err)
	}
	account := domain.ParseIdentity(in.GetAccount())
	if account.IsZero() {
		return nil, handleError(ctx, domain.ErrInvalidArgument("account", "account is required"))
	}
	memory, err := s.memoryUnit(ctx, in.GetUnitAddress())
	if err != nil {
		return nil, handleError(ctx, err)
	}
	balance, err := memory.Mint(ctx, account, amount)
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &stakev1.MintResponse{Balance: balance.String()}, nil
}

// Approve sets the allowance the caller grants to spender. Zero clears it.
func (s *UnitService) Approve(ctx context.Context, in *stakev1.ApproveRequest) (*stakev1.ApproveResponse, error) {
	caller := callerFromContext(ctx)
	if caller.IsZero() {
		return nil, handleError(ctx, domain.ErrUnauthorized(domain.RoleStaker, caller))
	}
	spender := domain.ParseIdentity(in.GetSpender())
	if spender.IsZero() {
		return nil, handleError(ctx, domain.ErrInvalidArgument("spender", "spender is required"))
	}
	amount, err := parseAllowance(in.GetAmount())
	if err != nil {
		return nil, handleError(ctx, err)
	}
	memory, err := s.memoryUnit(ctx, in.GetUnitAddress())
	if err != nil {
		return nil, handleError(ctx, err)
	}
	if err := memory.Approve(ctx, caller, spender, amount); err != nil {
		return nil, handleError(ctx, err)
	}
	return &stakev1.ApproveResponse{Allowance: memory.Allowance(caller, spender).String()}, nil
}

func (s *UnitService) BalanceOf(ctx context.Context, in *stakev1.BalanceOfRequest) (*stakev1.BalanceOfResponse, error) {
	address := domain.ParseAddress(in.GetUnitAddress())
	u, err := s.resolve(ctx, address)
	if err != nil {
		return nil, handleError(ctx, err)
	}
	balance, err := u.BalanceOf(ctx, domain.ParseIdentity(in.GetAccount()))
	if err != nil {
		return nil, handleError(ctx, domain.ErrExternalCall(address, "balanceOf", err))
	}
	return &stakev1.BalanceOfResponse{Balance: amountString(balance)}, nil
}

func (s *UnitService) resolve(ctx context.Context, address domain.Address) (unit.Unit, error) {
	if address.IsZero() {
		return nil, domain.ErrInvalidArgument("unit_address", "unit address is required")
	}
	u, err := s.units.Unit(ctx, address)
	if errors.Is(err, unit.ErrUnknownUnit) {
		return nil, domain.ErrInvalidArgument("unit_address", "no unit is hosted at this address")
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UnitService) memoryUnit(ctx context.Context, raw string) (*unit.Memory, error) {
	u, err := s.resolve(ctx, domain.ParseAddress(raw))
	if err != nil {
		return nil, err
	}
	memory, ok := unit.AsMemory(u)
	if !ok {
		return nil, domain.ErrInvalidArgument("unit_address", "unit is not hosted in process")
	}
	return memory, nil
}

// parseAllowance accepts zero, unlike staking amounts.
func parseAllowance(raw string) (*big.Int, error) {
	if strings.TrimSpace(raw) == "0" {
		return new(big.Int), nil
	}
	return domain.ParseAmount(raw)
}

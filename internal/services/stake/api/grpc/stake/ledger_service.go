package stake

import (
	"context"

	stakev1 "github.com/louisbranch/stakeledger/api/stake/v1"
	"github.com/louisbranch/stakeledger/internal/platform/grpc/pagination"
	"github.com/louisbranch/stakeledger/internal/services/stake/domain"
	"github.com/louisbranch/stakeledger/internal/services/stake/ledger"
)

const (
	defaultListStakesPageSize  = 25
	maxListStakesPageSize      = 100
	defaultListJournalPageSize = 50
	maxListJournalPageSize     = 200
)

// LedgerService implements stake.v1.StakeLedgerService.
type LedgerService struct {
	stakev1.UnimplementedStakeLedgerServiceServer
	ledger *ledger.Ledger
}

// NewLedgerService creates a LedgerService backed by l.
func NewLedgerService(l *ledger.Ledger) *LedgerService {
	return &LedgerService{ledger: l}
}

// SetAdmin2 replaces the admin2 slot. Admin1 only.
func (s *LedgerService) SetAdmin2(ctx context.Context, in *stakev1.SetAdmin2Request) (*stakev1.SetAdmin2Response, error) {
	roles, err := s.ledger.SetAdmin2(ctx, callerFromContext(ctx), domain.ParseIdentity(in.GetIdentity()))
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &stakev1.SetAdmin2Response{Roles: rolesToProto(roles)}, nil
}

// ChangeParent replaces the parent slot. Admin1 only.
func (s *LedgerService) ChangeParent(ctx context.Context, in *stakev1.ChangeParentRequest) (*stakev1.ChangeParentResponse, error) {
	roles, err := s.ledger.ChangeParent(ctx, callerFromContext(ctx), domain.ParseIdentity(in.GetIdentity()))
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &stakev1.ChangeParentResponse{Roles: rolesToProto(roles)}, nil
}

func (s *LedgerService) GetRoles(ctx context.Context, _ *stakev1.GetRolesRequest) (*stakev1.GetRolesResponse, error) {
	roles, err := s.ledger.Roles(ctx)
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &stakev1.GetRolesResponse{Roles: rolesToProto(roles)}, nil
}

// SetToken switches the current value unit. Existing entries stay under
// their original unit address.
func (s *LedgerService) SetToken(ctx context.Context, in *stakev1.SetTokenRequest) (*stakev1.SetTokenResponse, error) {
	address, err := s.ledger.SetToken(ctx, callerFromContext(ctx), domain.ParseAddress(in.GetAddress()))
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &stakev1.SetTokenResponse{Address: address.String()}, nil
}

func (s *LedgerService) CurrentToken(ctx context.Context, _ *stakev1.CurrentTokenRequest) (*stakev1.CurrentTokenResponse, error) {
	address, err := s.ledger.CurrentToken(ctx)
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &stakev1.CurrentTokenResponse{Address: address.String()}, nil
}

func (s *LedgerService) SetUcacAddr(ctx context.Context, in *stakev1.SetUcacAddrRequest) (*stakev1.SetUcacAddrResponse, error) {
	ucacID, err := domain.ParseUcacID(in.GetUcacId())
	if err != nil {
		return nil, handleError(ctx, err)
	}
	record, err := s.ledger.SetUcacAddr(ctx, callerFromContext(ctx), ucacID, domain.ParseAddress(in.GetAddress()))
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &stakev1.SetUcacAddrResponse{Ucac: ucacToProto(record)}, nil
}

func (s *LedgerService) SetOwner1(ctx context.Context, in *stakev1.SetOwner1Request) (*stakev1.SetOwner1Response, error) {
	ucacID, err := domain.ParseUcacID(in.GetUcacId())
	if err != nil {
		return nil, handleError(ctx, err)
	}
	record, err := s.ledger.SetOwner1(ctx, callerFromContext(ctx), ucacID, domain.ParseIdentity(in.GetIdentity()))
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &stakev1.SetOwner1Response{Ucac: ucacToProto(record)}, nil
}

func (s *LedgerService) SetOwner2(ctx context.Context, in *stakev1.SetOwner2Request) (*stakev1.SetOwner2Response, error) {
	ucacID, err := domain.ParseUcacID(in.GetUcacId())
	if err != nil {
		return nil, handleError(ctx, err)
	}
	record, err := s.ledger.SetOwner2(ctx, callerFromContext(ctx), ucacID, domain.ParseIdentity(in.GetIdentity()))
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &stakev1.SetOwner2Response{Ucac: ucacToProto(record)}, nil
}

// GetUcac returns the whole registry record; unknown ids read as empty.
func (s *LedgerService) GetUcac(ctx context.Context, in *stakev1.GetUcacRequest) (*stakev1.GetUcacResponse, error) {
	ucacID, err := domain.ParseUcacID(in.GetUcacId())
	if err != nil {
		return nil, handleError(ctx, err)
	}
	record, err := s.ledger.Ucac(ctx, ucacID)
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &stakev1.GetUcacResponse{Ucac: ucacToProto(record)}, nil
}

func (s *LedgerService) GetUcacAddr(ctx context.Context, in *stakev1.GetUcacAddrRequest) (*stakev1.GetUcacAddrResponse, error) {
	ucacID, err := domain.ParseUcacID(in.GetUcacId())
	if err != nil {
		return nil, handleError(ctx, err)
	}
	address, err := s.ledger.UcacAddr(ctx, ucacID)
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &stakev1.GetUcacAddrResponse{Address: address.String()}, nil
}

func (s *LedgerService) GetOwner1(ctx context.Context, in *stakev1.GetOwner1Request) (*stakev1.GetOwner1Response, error) {
	ucacID, err := domain.ParseUcacID(in.GetUcacId())
	if err != nil {
		return nil, handleError(ctx, err)
	}
	owner, err := s.ledger.Owner1(ctx, ucacID)
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &stakev1.GetOwner1Response{Identity: owner.String()}, nil
}

func (s *LedgerService) GetOwner2(ctx context.Context, in *stakev1.GetOwner2Request) (*stakev1.GetOwner2Response, error) {
	ucacID, err := domain.ParseUcacID(in.GetUcacId())
	if err != nil {
		return nil, handleError(ctx, err)
	}
	owner, err := s.ledger.Owner2(ctx, ucacID)
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &stakev1.GetOwner2Response{Identity: owner.String()}, nil
}

// IsUcacOwner accepts a unit address for wire compatibility; ownership does
// not depend on it.
func (s *LedgerService) IsUcacOwner(ctx context.Context, in *stakev1.IsUcacOwnerRequest) (*stakev1.IsUcacOwnerResponse, error) {
	ucacID, err := domain.ParseUcacID(in.GetUcacId())
	if err != nil {
		return nil, handleError(ctx, err)
	}
	owner, err := s.ledger.IsUcacOwner(ctx, domain.ParseAddress(in.GetUnitAddress()), ucacID, domain.ParseIdentity(in.GetIdentity()))
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &stakev1.IsUcacOwnerResponse{Owner: owner}, nil
}

// StakeTokens locks amount of the current unit for account against a UCAC.
// Parent only; account must have approved the ledger custody beforehand.
func (s *LedgerService) StakeTokens(ctx context.Context, in *stakev1.StakeTokensRequest) (*stakev1.StakeTokensResponse, error) {
	ucacID, err := domain.ParseUcacID(in.GetUcacId())
	if err != nil {
		return nil, handleError(ctx, err)
	}
	amount, err := domain.ParseAmount(in.GetAmount())
	if err != nil {
		return nil, handleError(ctx, err)
	}
	entry, err := s.ledger.StakeTokens(ctx, callerFromContext(ctx), ucacID, domain.ParseIdentity(in.GetAccount()), amount)
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &stakev1.StakeTokensResponse{Entry: stakeEntryToProto(entry)}, nil
}

// UnstakeTokens releases the caller's own stake under any unit epoch.
func (s *LedgerService) UnstakeTokens(ctx context.Context, in *stakev1.UnstakeTokensRequest) (*stakev1.UnstakeTokensResponse, error) {
	ucacID, err := domain.ParseUcacID(in.GetUcacId())
	if err != nil {
		return nil, handleError(ctx, err)
	}
	amount, err := domain.ParseAmount(in.GetAmount())
	if err != nil {
		return nil, handleError(ctx, err)
	}
	entry, err := s.ledger.UnstakeTokens(ctx, callerFromContext(ctx), domain.ParseAddress(in.GetUnitAddress()), ucacID, amount)
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &stakev1.UnstakeTokensResponse{Entry: stakeEntryToProto(entry)}, nil
}

func (s *LedgerService) StakedTokens(ctx context.Context, in *stakev1.StakedTokensRequest) (*stakev1.StakedTokensResponse, error) {
	ucacID, err := domain.ParseUcacID(in.GetUcacId())
	if err != nil {
		return nil, handleError(ctx, err)
	}
	amount, err := s.ledger.StakedTokens(ctx, domain.ParseAddress(in.GetUnitAddress()), domain.ParseIdentity(in.GetAccount()), ucacID)
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &stakev1.StakedTokensResponse{Amount: amountString(amount)}, nil
}

func (s *LedgerService) GetTotalStakedTokens(ctx context.Context, in *stakev1.GetTotalStakedTokensRequest) (*stakev1.GetTotalStakedTokensResponse, error) {
	ucacID, err := domain.ParseUcacID(in.GetUcacId())
	if err != nil {
		return nil, handleError(ctx, err)
	}
	amount, err := s.ledger.TotalStakedTokens(ctx, ucacID)
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &stakev1.GetTotalStakedTokensResponse{Amount: amountString(amount)}, nil
}

// ListStakes pages over stake entries, optionally filtered on unit, account
// and ucac_id.
func (s *LedgerService) ListStakes(ctx context.Context, in *stakev1.ListStakesRequest) (*stakev1.ListStakesResponse, error) {
	pageSize := pagination.ClampPageSize(in.GetPageSize(), pagination.PageSizeConfig{
		Default: defaultListStakesPageSize,
		Max:     maxListStakesPageSize,
	})
	cursor, err := pagination.DecodeToken(in.GetPageToken())
	if err != nil {
		return nil, handleError(ctx, domain.ErrInvalidArgument("page_token", err.Error()))
	}

	page, err := s.ledger.ListStakes(ctx, pageSize, cursor, in.GetFilter())
	if err != nil {
		return nil, handleError(ctx, err)
	}

	response := &stakev1.ListStakesResponse{
		Entries:       make([]*stakev1.StakeEntry, 0, len(page.Entries)),
		NextPageToken: pagination.EncodeToken(page.NextPageToken),
	}
	for _, entry := range page.Entries {
		response.Entries = append(response.Entries, stakeEntryToProto(entry))
	}
	return response, nil
}

// ListJournal pages over committed mutations, oldest first.
func (s *LedgerService) ListJournal(ctx context.Context, in *stakev1.ListJournalRequest) (*stakev1.ListJournalResponse, error) {
	pageSize := pagination.ClampPageSize(in.GetPageSize(), pagination.PageSizeConfig{
		Default: defaultListJournalPageSize,
		Max:     maxListJournalPageSize,
	})
	cursor, err := pagination.DecodeToken(in.GetPageToken())
	if err != nil {
		return nil, handleError(ctx, domain.ErrInvalidArgument("page_token", err.Error()))
	}

	page, err := s.ledger.ListJournal(ctx, pageSize, cursor)
	if err != nil {
		return nil, handleError(ctx, err)
	}

	response := &stakev1.ListJournalResponse{
		Entries:       make([]*stakev1.JournalEntry, 0, len(page.Entries)),
		NextPageToken: pagination.EncodeToken(page.NextPageToken),
	}
	for _, entry := range page.Entries {
		response.Entries = append(response.Entries, journalEntryToProto(entry))
	}
	return response, nil
}

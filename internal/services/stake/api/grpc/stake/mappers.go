package stake

import (
	"context"
	"math/big"
	"time"

	stakev1 "github.com/louisbranch/stakeledger/api/stake/v1"
	apperrors "github.com/louisbranch/stakeledger/internal/platform/errors"
	"github.com/louisbranch/stakeledger/internal/platform/requestctx"
	grpcmeta "github.com/louisbranch/stakeledger/internal/services/stake/api/grpc/metadata"
	"github.com/louisbranch/stakeledger/internal/services/stake/domain"
	"github.com/louisbranch/stakeledger/internal/services/stake/storage"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// handleError localizes err for the caller's requested locale.
func handleError(ctx context.Context, err error) error {
	return apperrors.HandleError(err, grpcmeta.LocaleFromContext(ctx))
}

func callerFromContext(ctx context.Context) domain.Identity {
	return domain.ParseIdentity(requestctx.CallerFromContext(ctx))
}

func rolesToProto(roles domain.Roles) *stakev1.Roles {
	return &stakev1.Roles{
		Admin1: roles.Admin1.String(),
		Admin2: roles.Admin2.String(),
		Parent: roles.Parent.String(),
	}
}

func ucacToProto(record domain.UcacRecord) *stakev1.Ucac {
	return &stakev1.Ucac{
		UcacId:  record.ID.String(),
		Address: record.Address.String(),
		Owner1:  record.Owner1.String(),
		Owner2:  record.Owner2.String(),
	}
}

func stakeEntryToProto(entry storage.StakeEntry) *stakev1.StakeEntry {
	return &stakev1.StakeEntry{
		UnitAddress: entry.Key.Unit.String(),
		Account:     entry.Key.Account.String(),
		UcacId:      entry.Key.Ucac.String(),
		Amount:      amountString(entry.Amount),
		UpdatedAt:   timestampProto(entry.UpdatedAt),
	}
}

func journalEntryToProto(entry storage.JournalEntry) *stakev1.JournalEntry {
	out := &stakev1.JournalEntry{
		Id:          entry.ID,
		Seq:         entry.Seq,
		Kind:        string(entry.Kind),
		Actor:       entry.Actor.String(),
		UnitAddress: entry.Unit.String(),
		Account:     entry.Account.String(),
		Detail:      entry.Detail,
		RecordedAt:  timestampProto(entry.RecordedAt),
	}
	if !entry.Ucac.IsZero() {
		out.UcacId = entry.Ucac.String()
	}
	if entry.Amount != nil {
		out.Amount = entry.Amount.String()
	}
	return out
}

// amountString renders nil as "0" so zero-default reads stay explicit on the wire.
func amountString(amount *big.Int) string {
	if amount == nil {
		return "0"
	}
	return amount.String()
}

func timestampProto(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

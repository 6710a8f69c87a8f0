package ledger

import (
	"context"
	"errors"

	"github.com/louisbranch/stakeledger/internal/services/stake/domain"
	"github.com/louisbranch/stakeledger/internal/services/stake/storage"
	"github.com/louisbranch/stakeledger/internal/services/stake/storage/filter"
)

// ListStakes pages over stake entries matching an AIP-160 filter.
func (l *Ledger) ListStakes(ctx context.Context, pageSize int, pageToken, filterExpr string) (storage.StakeEntryPage, error) {
	cond, err := filter.ParseStakeFilter(filterExpr)
	if err != nil {
		return storage.StakeEntryPage{}, domain.ErrInvalidArgument("filter", err.Error())
	}
	page, err := l.store.ListStakes(ctx, pageSize, pageToken, cond)
	if errors.Is(err, storage.ErrInvalidPageToken) {
		return storage.StakeEntryPage{}, domain.ErrInvalidArgument("page_token", err.Error())
	}
	return page, err
}

// ListJournal pages over committed mutations in append order.
func (l *Ledger) ListJournal(ctx context.Context, pageSize int, pageToken string) (storage.JournalPage, error) {
	page, err := l.store.ListJournal(ctx, pageSize, pageToken)
	if errors.Is(err, storage.ErrInvalidPageToken) {
		return storage.JournalPage{}, domain.ErrInvalidArgument("page_token", err.Error())
	}
	return page, err
}

package sync

import (
	"context"
	"fmt"

	"github.com/erp/partysync/internal/domain/channel"
	"github.com/erp/partysync/internal/domain/geo"
	"github.com/erp/partysync/internal/domain/party"
	"github.com/erp/partysync/internal/domain/shared"
	"go.uber.org/zap"
)

// ImportService orchestrates one ingestion unit: resolve the party for
// a remote customer, then reconcile each of its addresses, all inside
// a single transaction. Creation is serialized per (channel, remote id)
// through the creation lock, so concurrent workers processing the same
// customer cannot double-insert.
type ImportService struct {
	scope        TransactionScope
	customers    CustomerAPI
	countries    geo.CountryLookup
	subdivisions geo.SubdivisionLookup
	locks        CreationLock
	logger       *zap.Logger
}

// NewImportService creates a new ImportService
func NewImportService(
	scope TransactionScope,
	customers CustomerAPI,
	countries geo.CountryLookup,
	subdivisions geo.SubdivisionLookup,
	locks CreationLock,
	logger *zap.Logger,
) *ImportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImportService{
		scope:        scope,
		customers:    customers,
		countries:    countries,
		subdivisions: subdivisions,
		locks:        locks,
		logger:       logger,
	}
}

// ImportResult reports what one ingestion unit resolved and created
type ImportResult struct {
	Party            *party.Party
	Addresses        []party.Address
	CreatedParty     bool
	CreatedAddresses int
}

// ImportCustomer resolves the customer payload to a party and
// reconciles the given addresses against it. The whole unit commits or
// rolls back together; an error on any record aborts only this unit,
// batching policy stays with the caller.
func (s *ImportService) ImportCustomer(ctx context.Context, ch *channel.Channel, customer RemoteCustomer, addresses []RemoteAddress) (*ImportResult, error) {
	if ch == nil {
		return nil, party.ErrChannelRequired
	}
	if !ch.Enabled {
		return nil, shared.NewDomainError("CHANNEL_DISABLED", "Channel is disabled for ingestion")
	}

	release, err := s.locks.Acquire(ctx, creationKey(ch, customer.CustomerID))
	if err != nil {
		return nil, err
	}
	defer release()

	var result ImportResult
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		parties := NewPartyReconciler(repos.PartyRepo(), repos.RefRepo(), repos.ContactRepo(), s.customers, s.logger)

		existing, err := parties.FindByRemoteData(ctx, ch, customer)
		if err != nil {
			return err
		}
		p := existing
		if p == nil {
			p, err = parties.CreateFromRemoteData(ctx, ch, customer)
			if err != nil {
				return err
			}
			result.CreatedParty = true
		}

		reconciler := NewAddressReconciler(repos.AddressRepo(), repos.ContactRepo(), s.countries, s.subdivisions, s.logger)
		for _, remote := range addresses {
			before := len(p.Addresses)
			addr, err := reconciler.FindOrCreateForParty(ctx, p, remote)
			if err != nil {
				return err
			}
			if len(p.Addresses) > before {
				result.CreatedAddresses++
			}
			result.Addresses = append(result.Addresses, *addr)
		}

		result.Party = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("customer import completed",
		zap.String("channel", ch.Code),
		zap.String("remote_id", customer.CustomerID),
		zap.Bool("created_party", result.CreatedParty),
		zap.Int("created_addresses", result.CreatedAddresses),
	)
	result.Party.ClearDomainEvents()

	return &result, nil
}

// ImportByRemoteID resolves a bare remote customer id, fetching the
// payload from the platform API when the party is unknown locally.
func (s *ImportService) ImportByRemoteID(ctx context.Context, ch *channel.Channel, remoteID string) (*party.Party, error) {
	if ch == nil {
		return nil, party.ErrChannelRequired
	}
	if !ch.Enabled {
		return nil, shared.NewDomainError("CHANNEL_DISABLED", "Channel is disabled for ingestion")
	}

	release, err := s.locks.Acquire(ctx, creationKey(ch, remoteID))
	if err != nil {
		return nil, err
	}
	defer release()

	var p *party.Party
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		parties := NewPartyReconciler(repos.PartyRepo(), repos.RefRepo(), repos.ContactRepo(), s.customers, s.logger)
		p, err = parties.FindOrCreateByRemoteID(ctx, ch, remoteID)
		return err
	})
	if err != nil {
		return nil, err
	}

	p.ClearDomainEvents()
	return p, nil
}

func creationKey(ch *channel.Channel, remoteID string) string {
	return fmt.Sprintf("party:create:%s:%s", ch.Code, remoteID)
}

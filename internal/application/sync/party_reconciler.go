package sync

import (
	"context"
	"errors"

	"github.com/erp/partysync/internal/domain/channel"
	"github.com/erp/partysync/internal/domain/party"
	"github.com/erp/partysync/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PartyReconciler resolves remote customers to local parties. Lookups
// are keyed by (channel, remote id); creation links the new party to
// the channel and attaches the email contact when one is present.
//
// The reconciler works inside whatever transaction its repositories are
// scoped to and is not safe for concurrent creation of the same
// (channel, remote id) without external serialization.
type PartyReconciler struct {
	parties   party.PartyRepository
	refs      party.RemoteCustomerRefRepository
	contacts  party.ContactMechanismRepository
	customers CustomerAPI
	logger    *zap.Logger
}

// NewPartyReconciler creates a new PartyReconciler
func NewPartyReconciler(
	parties party.PartyRepository,
	refs party.RemoteCustomerRefRepository,
	contacts party.ContactMechanismRepository,
	customers CustomerAPI,
	logger *zap.Logger,
) *PartyReconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PartyReconciler{
		parties:   parties,
		refs:      refs,
		contacts:  contacts,
		customers: customers,
		logger:    logger,
	}
}

// FindByRemoteID looks up the party linked to a remote customer id on
// the given channel. Returns (nil, nil) when no link exists. A missing
// channel fails with party.ErrChannelRequired; more than one matching
// link fails with party.ErrAmbiguousRemoteRef.
func (r *PartyReconciler) FindByRemoteID(ctx context.Context, ch *channel.Channel, remoteID string) (*party.Party, error) {
	if err := requireChannel(ch); err != nil {
		return nil, err
	}

	ref, err := r.refs.FindByChannelAndRemoteID(ctx, ch.ID, remoteID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.parties.FindByID(ctx, ref.PartyID)
}

// FindByRemoteData looks up the party for the customer id embedded in
// the payload. Same contract as FindByRemoteID.
func (r *PartyReconciler) FindByRemoteData(ctx context.Context, ch *channel.Channel, data RemoteCustomer) (*party.Party, error) {
	return r.FindByRemoteID(ctx, ch, data.CustomerID)
}

// FindOrCreateByRemoteID resolves a remote customer id to a party,
// fetching the full payload from the platform API on a miss. The fetch
// is a blocking network call; its failures propagate unchanged.
func (r *PartyReconciler) FindOrCreateByRemoteID(ctx context.Context, ch *channel.Channel, remoteID string) (*party.Party, error) {
	p, err := r.FindByRemoteID(ctx, ch, remoteID)
	if err != nil || p != nil {
		return p, err
	}

	data, err := r.customers.FetchCustomer(ctx, ch, remoteID)
	if err != nil {
		return nil, err
	}

	return r.CreateFromRemoteData(ctx, ch, *data)
}

// FindOrCreateFromRemoteData resolves the customer payload to a party,
// creating one on a miss. This is the webhook entry point: the payload
// is already in hand, so no remote fetch happens.
func (r *PartyReconciler) FindOrCreateFromRemoteData(ctx context.Context, ch *channel.Channel, data RemoteCustomer) (*party.Party, error) {
	p, err := r.FindByRemoteData(ctx, ch, data)
	if err != nil || p != nil {
		return p, err
	}

	return r.CreateFromRemoteData(ctx, ch, data)
}

// CreateFromRemoteData unconditionally creates a party from the
// payload: the party itself, one remote customer ref for the channel,
// and an email contact when the payload carries one. Callers wanting
// dedup must use the find-or-create variants.
func (r *PartyReconciler) CreateFromRemoteData(ctx context.Context, ch *channel.Channel, data RemoteCustomer) (*party.Party, error) {
	if err := requireChannel(ch); err != nil {
		return nil, err
	}

	p, err := party.NewParty(party.FullName(data.FirstName, data.LastName))
	if err != nil {
		return nil, err
	}
	if err := r.parties.Save(ctx, p); err != nil {
		return nil, err
	}

	ref, err := party.NewRemoteCustomerRef(ch.ID, p.ID, data.CustomerID)
	if err != nil {
		return nil, err
	}
	if err := r.refs.Save(ctx, ref); err != nil {
		return nil, err
	}
	p.RemoteRefs = append(p.RemoteRefs, *ref)
	p.AddDomainEvent(party.NewPartyLinkedEvent(ref))

	if data.Email != "" {
		cm, err := party.NewEmailContact(p.ID, data.Email)
		if err != nil {
			return nil, err
		}
		if err := r.contacts.Save(ctx, cm); err != nil {
			return nil, err
		}
		p.ContactMechanisms = append(p.ContactMechanisms, *cm)
	}

	r.logger.Info("created party from remote customer",
		zap.String("channel", ch.Code),
		zap.String("remote_id", data.CustomerID),
		zap.String("party_id", p.ID.String()),
	)

	return p, nil
}

func requireChannel(ch *channel.Channel) error {
	if ch == nil || ch.ID == uuid.Nil {
		return party.ErrChannelRequired
	}
	return nil
}

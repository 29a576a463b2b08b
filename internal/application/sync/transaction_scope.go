package sync

import (
	"context"

	"github.com/erp/partysync/internal/domain/party"
)

// TransactionScope provides transactional access to the party
// repositories. The reconcilers never commit or roll back themselves;
// a failure anywhere inside Execute aborts the whole unit of work.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the party repositories
// within one transaction. All repositories returned share the same
// underlying database transaction.
type TransactionalRepositories interface {
	// PartyRepo returns the party repository scoped to the transaction
	PartyRepo() party.PartyRepository
	// RefRepo returns the remote customer ref repository scoped to the transaction
	RefRepo() party.RemoteCustomerRefRepository
	// AddressRepo returns the address repository scoped to the transaction
	AddressRepo() party.AddressRepository
	// ContactRepo returns the contact mechanism repository scoped to the transaction
	ContactRepo() party.ContactMechanismRepository
}

// NoOpTransactionScope runs the unit of work without a real transaction.
// Useful in tests and for callers that manage their own transaction.
type NoOpTransactionScope struct {
	partyRepo   party.PartyRepository
	refRepo     party.RemoteCustomerRefRepository
	addressRepo party.AddressRepository
	contactRepo party.ContactMechanismRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories.
func NewNoOpTransactionScope(
	partyRepo party.PartyRepository,
	refRepo party.RemoteCustomerRefRepository,
	addressRepo party.AddressRepository,
	contactRepo party.ContactMechanismRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		partyRepo:   partyRepo,
		refRepo:     refRepo,
		addressRepo: addressRepo,
		contactRepo: contactRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// PartyRepo returns the party repository.
func (s *NoOpTransactionScope) PartyRepo() party.PartyRepository {
	return s.partyRepo
}

// RefRepo returns the remote customer ref repository.
func (s *NoOpTransactionScope) RefRepo() party.RemoteCustomerRefRepository {
	return s.refRepo
}

// AddressRepo returns the address repository.
func (s *NoOpTransactionScope) AddressRepo() party.AddressRepository {
	return s.addressRepo
}

// ContactRepo returns the contact mechanism repository.
func (s *NoOpTransactionScope) ContactRepo() party.ContactMechanismRepository {
	return s.contactRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)

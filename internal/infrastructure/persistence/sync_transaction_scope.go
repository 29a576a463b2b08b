package persistence

import (
	"context"

	appsync "github.com/erp/partysync/internal/application/sync"
	"github.com/erp/partysync/internal/domain/party"
	"gorm.io/gorm"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
// It provides atomic execution of multiple repository operations.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appsync.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormTransactionalRepositories provides access to all repositories within a transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// PartyRepo returns the party repository scoped to the current transaction.
func (r *gormTransactionalRepositories) PartyRepo() party.PartyRepository {
	return NewGormPartyRepository(r.tx)
}

// RefRepo returns the remote customer ref repository scoped to the current transaction.
func (r *gormTransactionalRepositories) RefRepo() party.RemoteCustomerRefRepository {
	return NewGormRemoteCustomerRefRepository(r.tx)
}

// AddressRepo returns the address repository scoped to the current transaction.
func (r *gormTransactionalRepositories) AddressRepo() party.AddressRepository {
	return NewGormAddressRepository(r.tx)
}

// ContactRepo returns the contact mechanism repository scoped to the current transaction.
func (r *gormTransactionalRepositories) ContactRepo() party.ContactMechanismRepository {
	return NewGormContactMechanismRepository(r.tx)
}

// Ensure GormTransactionScope implements TransactionScope
var _ appsync.TransactionScope = (*GormTransactionScope)(nil)

// Ensure gormTransactionalRepositories implements TransactionalRepositories
var _ appsync.TransactionalRepositories = (*gormTransactionalRepositories)(nil)

// Package models contains the GORM persistence models for the party
// sync domain. Persistence models are kept separate from the domain
// entities and converted through ToDomain/FromDomain so the domain
// layer stays free of storage concerns.
//
// Address and party string columns are NOT NULL DEFAULT '' on purpose:
// the matching rules treat empty string and absent as the same value,
// and normalizing at the schema level keeps comparisons trivial.
package models

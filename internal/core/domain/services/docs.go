// Package services contains stateless domain services of the custody
// tracker. Domain services hold business rules that span more than one
// entity and therefore belong to no single aggregate.
package services

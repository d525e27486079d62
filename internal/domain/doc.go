// Package domain contains shared domain types used across entity sub-packages.
// Entities live in sub-packages (domain/project, domain/vacancy,
// domain/invitation); the generic filtering pipeline lives in domain/filter and
// the published events in domain/event. This root package holds the error
// taxonomy shared by all of them.
package domain

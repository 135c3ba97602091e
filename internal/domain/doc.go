// Package domain contains shared domain types used across sub-packages.
// Specific concerns live in sub-packages (domain/schema for descriptors,
// domain/value for converted values, domain/record for records,
// domain/convert for the type conversion table). This root package holds
// the sentinel errors and error detail types shared across all of them.
package domain

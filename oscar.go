// Package oscar extracts structured course-catalog records from the
// section search pages of a Banner-based registration system.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or source system (e.g., banner/, sqlite/, http/).
package oscar

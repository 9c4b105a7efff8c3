// Package filter provides operation descriptors which discard graph elements:
// closure filters, property and interval predicates, duplicate removal and
// history-based back filtering.
package filter

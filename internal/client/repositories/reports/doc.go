// Package reports persists benchmark reports in the local SQLite database.
package reports

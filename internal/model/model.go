// Package model holds the plain records the data-access layer reads from
// and writes to the relational store.
//
// Field names follow the LightBnB schema columns. Repositories scan rows
// by position; `json` tags shape the records served over HTTP and read
// from fixtures.
package model

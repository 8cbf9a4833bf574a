// Package mocks contains testify mocks for the interfaces in internal/model.
package mocks

// Package gencmd implements the backend of the `pycraft gen` command.
//
// It loads Python module definition documents and generates one .py file per
// definition, running workers concurrently under a weighted semaphore.
package gencmd

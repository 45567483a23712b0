// Package id issues snowflake ids for every primary key in both databases.
package id

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	mu   sync.Mutex
)

// Init sets the node this process generates ids on. Server and worker
// replicas must use distinct node ids (0-1023).
func Init(nodeID int64) error {
	mu.Lock()
	defer mu.Unlock()

	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return fmt.Errorf("snowflake node %d: %w", nodeID, err)
	}
	node = n
	return nil
}

// New generates a time-ordered unique int64 id. It panics if Init was never called.
func New() int64 {
	mu.Lock()
	n := node
	mu.Unlock()
	if n == nil {
		panic("id: New called before Init")
	}
	return n.Generate().Int64()
}

// NewString is New in base36, used in object keys and slug suffixes.
func NewString() string {
	return strconv.FormatInt(New(), 36)
}

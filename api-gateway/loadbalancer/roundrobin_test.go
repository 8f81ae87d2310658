package loadbalancer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundRobinCyclesThroughServers(t *testing.T) {
	rr := NewRoundRobin([]string{"http://a:8080", "http://b:8080", "http://c:8080"})

	assert.Equal(t, "http://a:8080", rr.Next())
	assert.Equal(t, "http://b:8080", rr.Next())
	assert.Equal(t, "http://c:8080", rr.Next())
	assert.Equal(t, "http://a:8080", rr.Next())
}

func TestRoundRobinFallsBackToDefault(t *testing.T) {
	rr := NewRoundRobin(nil)
	assert.Equal(t, []string{"http://localhost:8080"}, rr.Servers())
	assert.Equal(t, "http://localhost:8080", rr.Next())
}

func TestServersReturnsCopy(t *testing.T) {
	rr := NewRoundRobin([]string{"http://a:8080"})
	servers := rr.Servers()
	servers[0] = "mutated"
	assert.Equal(t, "http://a:8080", rr.Next())
}

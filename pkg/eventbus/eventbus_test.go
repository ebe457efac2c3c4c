package eventbus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type batchMoved struct{ ID string }
type batchDeleted struct{ ID string }

func TestPublishRoutesByType(t *testing.T) {
	bus := New(nil)
	var moved, deleted []string
	Subscribe(bus, func(e batchMoved) { moved = append(moved, e.ID) })
	Subscribe(bus, func(e batchDeleted) { deleted = append(deleted, e.ID) })

	require.Equal(t, 1, Publish(bus, batchMoved{ID: "B1"}))
	require.Equal(t, 1, Publish(bus, batchDeleted{ID: "B2"}))

	require.Equal(t, []string{"B1"}, moved)
	require.Equal(t, []string{"B2"}, deleted)
}

func TestHandlersRunInSubscriptionOrder(t *testing.T) {
	bus := New(nil)
	var order []int
	Subscribe(bus, func(batchMoved) { order = append(order, 1) })
	Subscribe(bus, func(batchMoved) { order = append(order, 2) })

	Publish(bus, batchMoved{})

	require.Equal(t, []int{1, 2}, order)
}

func TestUnsubscribe(t *testing.T) {
	bus := New(nil)
	calls := 0
	sub := Subscribe(bus, func(batchMoved) { calls++ })

	sub.Unsubscribe()
	sub.Unsubscribe()

	require.Zero(t, Publish(bus, batchMoved{}))
	require.Zero(t, calls)
}

func TestPanickingHandlerDoesNotStopDelivery(t *testing.T) {
	bus := New(nil)
	reached := false
	Subscribe(bus, func(batchMoved) { panic("boom") })
	Subscribe(bus, func(batchMoved) { reached = true })

	require.Equal(t, 2, Publish(bus, batchMoved{}))
	require.True(t, reached)
	require.Equal(t, Stats{Published: 1, Failures: 1}, bus.Stats())
}

func TestHandlerMaySubscribeDuringPublish(t *testing.T) {
	bus := New(nil)
	late := 0
	Subscribe(bus, func(batchMoved) {
		Subscribe(bus, func(batchMoved) { late++ })
	})

	Publish(bus, batchMoved{})
	require.Zero(t, late)
	Publish(bus, batchMoved{})
	require.Equal(t, 1, late)
}

func TestNilBusPublishIsNoop(t *testing.T) {
	var bus *Bus
	require.Zero(t, Publish(bus, batchMoved{}))
}

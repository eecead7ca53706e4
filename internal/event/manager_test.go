package event

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManager_DispatchOrder(t *testing.T) {
	m := NewManager()
	var calls []string
	m.Subscribe(TypeDocumentSaved, func(e Event) bool {
		calls = append(calls, "first:"+e.Data.(DocumentSavedData).FilePath)
		return false
	})
	m.Subscribe(TypeDocumentSaved, func(e Event) bool {
		calls = append(calls, "second")
		return false
	})
	m.Subscribe(TypeDocumentLoaded, func(e Event) bool {
		calls = append(calls, "other type")
		return false
	})

	m.Dispatch(TypeDocumentSaved, DocumentSavedData{FilePath: "a.ntp"})
	require.Equal(t, []string{"first:a.ntp", "second"}, calls)
}

func TestManager_Consume(t *testing.T) {
	m := NewManager()
	reached := false
	m.Subscribe(TypeScanWarning, func(Event) bool { return true })
	m.Subscribe(TypeScanWarning, func(Event) bool {
		reached = true
		return false
	})
	m.Dispatch(TypeScanWarning, ScanWarningData{})
	require.False(t, reached)
}

func TestManager_SubscribeDuringDispatch(t *testing.T) {
	m := NewManager()
	count := 0
	m.Subscribe(TypeDocumentCleared, func(Event) bool {
		count++
		m.Subscribe(TypeDocumentCleared, func(Event) bool {
			count += 10
			return false
		})
		return false
	})
	m.Dispatch(TypeDocumentCleared, nil)
	require.Equal(t, 1, count)
}

func TestType_String(t *testing.T) {
	require.Equal(t, "range-applied", TypeRangeApplied.String())
	require.Equal(t, "document-saved", TypeDocumentSaved.String())
}

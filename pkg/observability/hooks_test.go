package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	tr := NoopTreeHooks{}
	tr.OnBuildStart(ctx, "canonical")
	tr.OnBuildComplete(ctx, "canonical", 389497, time.Second)
	tr.OnCountComplete(ctx, 389497, time.Millisecond)

	o := NoopOutputHooks{}
	o.OnExportComplete(ctx, 389497, time.Second, nil)
	o.OnSampleComplete(ctx, 4, 10, time.Millisecond, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Tree().(NoopTreeHooks); !ok {
		t.Error("Tree() should return NoopTreeHooks by default")
	}
	if _, ok := Output().(NoopOutputHooks); !ok {
		t.Error("Output() should return NoopOutputHooks by default")
	}

	customTree := &testTreeHooks{}
	SetTreeHooks(customTree)
	if Tree() != customTree {
		t.Error("SetTreeHooks should set custom hooks")
	}

	customOutput := &testOutputHooks{}
	SetOutputHooks(customOutput)
	if Output() != customOutput {
		t.Error("SetOutputHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Tree().(NoopTreeHooks); !ok {
		t.Error("Reset() should restore NoopTreeHooks")
	}
	if _, ok := Output().(NoopOutputHooks); !ok {
		t.Error("Reset() should restore NoopOutputHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testTreeHooks{}
	SetTreeHooks(custom)

	// Setting nil should be ignored
	SetTreeHooks(nil)
	SetOutputHooks(nil)

	if Tree() != custom {
		t.Error("SetTreeHooks(nil) should be ignored")
	}
	if _, ok := Output().(NoopOutputHooks); !ok {
		t.Error("SetOutputHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testTreeHooks struct{ NoopTreeHooks }
type testOutputHooks struct{ NoopOutputHooks }

package log

import (
	"context"
	"fmt"
	"testing"
	"time"
)

// TestLoggerInterface tests the Logger interface implementation
func TestLoggerInterface(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelDebug)
	
	// Test Debug logging
	testLogger.Debug("debug message", "key1", "value1", "number", 42)
	
	// Test Info logging
	testLogger.Info("info message", "operation", "test")
	
	// Test Warn logging
	testLogger.Warn("warning message", "warning_code", "TEST_WARNING")
	
	// Test Error logging
	testErr := fmt.Errorf("test error")
	testLogger.Error("error message", testErr, "error_code", "TEST_ERROR")
	
	// Verify output was captured
	output := buffer.String()
	if output == "" {
		t.Fatal("Expected log output, got empty string")
	}
	
	// Verify all log levels were captured
	if !testLogger.ContainsMessage("debug message") {
		t.Error("Debug message not found in output")
	}
	
	if !testLogger.ContainsMessage("info message") {
		t.Error("Info message not found in output")
	}
	
	if !testLogger.ContainsMessage("warning message") {
		t.Error("Warning message not found in output")
	}
	
	if !testLogger.ContainsMessage("error message") {
		t.Error("Error message not found in output")
	}
	
	// Verify structured fields
	if !testLogger.ContainsField("key1", "value1") {
		t.Error("Expected field key1=value1 not found")
	}
	
	if !testLogger.ContainsField("number", 42.0) { // JSON unmarshaling converts numbers to float64
		t.Error("Expected field number=42 not found")
	}
}

// TestLoggerWith tests the With method for context-aware logging
func TestLoggerWith(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelDebug)
	
	// Create contextual logger
	contextLogger := testLogger.With(
		ModelNameKey, "TestModel",
		ComponentKey, "test",
		EstimatorIDKey, "test-001",
	)
	
	// Log with context
	contextLogger.Info("contextual message", OperationKey, OperationFit)
	
	// Verify context fields are included
	if !testLogger.ContainsField(ModelNameKey, "TestModel") {
		t.Error("Model name context not found")
	}
	
	if !testLogger.ContainsField(ComponentKey, "test") {
		t.Error("Component context not found")
	}
	
	if !testLogger.ContainsField(OperationKey, OperationFit) {
		t.Error("Operation field not found")
	}
}

// TestLoggerEnabled tests the Enabled method
func TestLoggerEnabled(t *testing.T) {
	// Create logger with Info level
	testLogger, _ := NewTestLogger(LevelInfo)
	ctx := context.Background()
	
	// Test level checking
	if !testLogger.Enabled(ctx, LevelInfo) {
		t.Error("Logger should be enabled for Info level")
	}
	
	if !testLogger.Enabled(ctx, LevelError) {
		t.Error("Logger should be enabled for Error level")
	}
	
	if testLogger.Enabled(ctx, LevelDebug) {
		t.Error("Logger should not be enabled for Debug level")
	}
	
	// Test that disabled logs don't appear
	testLogger.Debug("this should not appear")
	testLogger.Info("this should appear")
	
	if testLogger.ContainsMessage("this should not appear") {
		t.Error("Debug message should not appear when level is Info")
	}
	
	if !testLogger.ContainsMessage("this should appear") {
		t.Error("Info message should appear when level is Info")
	}
}

// TestTreeAttributeKeys tests tree-specific attribute keys
func TestTreeAttributeKeys(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)

	testLogger.Info("Tree induced",
		OperationKey, OperationFit,
		PhaseKey, PhaseTraining,
		SamplesKey, 14,
		FeaturesKey, 4,
		ModelNameKey, "ID3Classifier",
		DepthKey, 2,
		LeavesKey, 5,
	)

	entries, err := testLogger.GetLogEntries()
	if err != nil {
		t.Fatalf("Failed to parse log entries: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("Expected 1 log entry, got %d", len(entries))
	}

	entry := entries[0]

	expectedFields := map[string]interface{}{
		OperationKey: OperationFit,
		PhaseKey:     PhaseTraining,
		SamplesKey:   14.0, // JSON numbers are float64
		FeaturesKey:  4.0,
		ModelNameKey: "ID3Classifier",
		DepthKey:     2.0,
		LeavesKey:    5.0,
	}

	for key, expectedValue := range expectedFields {
		if actualValue, exists := entry[key]; !exists {
			t.Errorf("Expected field %s not found", key)
		} else if actualValue != expectedValue {
			t.Errorf("Field %s: expected %v, got %v", key, expectedValue, actualValue)
		}
	}
}

// TestLoggerProviderIntegration tests the LoggerProvider interface
func TestLoggerProviderIntegration(t *testing.T) {
	provider, buffer := NewTestLoggerProvider(LevelDebug)
	
	// Test GetLogger
	logger := provider.GetLogger()
	logger.Info("provider test message")
	
	// Test GetLoggerWithName
	namedLogger := provider.GetLoggerWithName("test-component")
	namedLogger.Info("named logger message")
	
	// Verify output
	if buffer.String() == "" {
		t.Fatal("Expected log output from provider")
	}
	
	// Parse entries to verify component name
	lines := buffer.String()
	if !testContains(lines, "provider test message") {
		t.Error("Provider test message not found")
	}
	
	if !testContains(lines, "named logger message") {
		t.Error("Named logger message not found")
	}
	
	if !testContains(lines, "test-component") {
		t.Error("Component name not found in named logger output")
	}
}

// TestPredictionAttributesLogging tests prediction-related logging
func TestPredictionAttributesLogging(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)

	startTime := time.Now()
	duration := time.Since(startTime)

	testLogger.Info("Prediction completed",
		OperationKey, OperationPredict,
		DurationMsKey, duration.Milliseconds(),
		PredsKey, 5,
		FallbackKey, "Yes",
		FallbackCountKey, 1,
	)

	if !testLogger.ContainsField(DurationMsKey, float64(duration.Milliseconds())) {
		t.Error("Duration not logged correctly")
	}

	if !testLogger.ContainsField(FallbackKey, "Yes") {
		t.Error("Fallback label not logged correctly")
	}

	if !testLogger.ContainsField(FallbackCountKey, 1.0) {
		t.Error("Fallback count not logged correctly")
	}
}

// TestErrorLoggingIntegration tests error logging integration
func TestErrorLoggingIntegration(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelError)
	
	// Create a test error
	testErr := fmt.Errorf("example 3 has no attribute")
	
	// Log error with context
	testLogger.Error("Training failed",
		"error", testErr,
		OperationKey, OperationFit,
		ErrorCodeKey, ErrorMissingKey,
		SamplesKey, 100,
		SuggestionKey, "Check that every example carries the target attribute",
	)
	
	// Verify error logging
	entries, err := testLogger.GetLogEntries()
	if err != nil {
		t.Fatalf("Failed to parse log entries: %v", err)
	}
	
	if len(entries) != 1 {
		t.Fatalf("Expected 1 error entry, got %d", len(entries))
	}
	
	entry := entries[0]
	
	// Check error-specific fields
	if entry["level"] != "ERROR" {
		t.Error("Expected ERROR level")
	}
	
	if !testLogger.ContainsField(ErrorCodeKey, ErrorMissingKey) {
		t.Error("Error code not found")
	}
	
	if !testLogger.ContainsField(SuggestionKey, "Check that every example carries the target attribute") {
		t.Error("Error suggestion not found")
	}
}

// TestConcurrentLogging tests thread safety of logging
func TestConcurrentLogging(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)
	
	// Run concurrent logging with fewer messages to reduce flakiness
	numGoroutines := 3
	messagesPerGoroutine := 3
	
	done := make(chan bool, numGoroutines)
	
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer func() { done <- true }()
			
			for j := 0; j < messagesPerGoroutine; j++ {
				testLogger.Info(fmt.Sprintf("goroutine %d message %d", id, j),
					"goroutine_id", id,
					"message_id", j,
				)
			}
		}(i)
	}
	
	// Wait for all goroutines to complete
	for i := 0; i < numGoroutines; i++ {
		<-done
	}
	
	// Verify messages were logged (at least some should be there)
	entries, err := testLogger.GetLogEntries()
	if err != nil {
		t.Fatalf("Failed to parse log entries: %v", err)
	}
	
	expectedEntries := numGoroutines * messagesPerGoroutine
	if len(entries) != expectedEntries {
		t.Errorf("Expected around %d log entries, got %d", expectedEntries, len(entries))
	}
}

// testContains is a helper function to check if a string contains a substring
func testContains(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(substr) == 0 || 
		func() bool {
			for i := 0; i <= len(s)-len(substr); i++ {
				if s[i:i+len(substr)] == substr {
					return true
				}
			}
			return false
		}())
}

// BenchmarkLogging benchmarks logging performance
func BenchmarkLogging(b *testing.B) {
	testLogger, _ := NewTestLogger(LevelInfo)
	
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		testLogger.Info("benchmark message",
			"iteration", i,
			OperationKey, OperationPredict,
			SamplesKey, 1000,
		)
	}
}

// BenchmarkLoggingWithContext benchmarks logging with contextual fields
func BenchmarkLoggingWithContext(b *testing.B) {
	testLogger, _ := NewTestLogger(LevelInfo)
	contextLogger := testLogger.With(
		ModelNameKey, "BenchmarkModel",
		ComponentKey, "benchmark",
	)
	
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		contextLogger.Info("benchmark message",
			"iteration", i,
			OperationKey, OperationPredict,
			SamplesKey, 1000,
		)
	}
}
package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/sirupsen/logrus/hooks/test"
)

type fakeTableLister struct {
	names []string
	err   error
	calls int
	limit int32
}

func (f *fakeTableLister) ListTables(ctx context.Context, params *dynamodb.ListTablesInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error) {
	f.calls++
	if params.Limit != nil {
		f.limit = *params.Limit
	}
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.ListTablesOutput{TableNames: f.names}, nil
}

func TestListTables(t *testing.T) {
	ctx := context.Background()

	t.Run("ReturnsNames", func(t *testing.T) {
		lister := &fakeTableLister{names: []string{"devices", "sessions"}}
		service, err := NewTableService(lister, 10)
		if err != nil {
			t.Fatalf("NewTableService failed: %v", err)
		}
		logger, hook := test.NewNullLogger()

		names, err := service.ListTables(ctx, logger)
		if err != nil {
			t.Fatalf("ListTables failed: %v", err)
		}
		if !reflect.DeepEqual(names, []string{"devices", "sessions"}) {
			t.Errorf("Unexpected names %v", names)
		}
		if lister.limit != 10 {
			t.Errorf("Expected limit 10 on request, got %d", lister.limit)
		}
		if len(hook.AllEntries()) != 3 {
			t.Errorf("Expected header plus one line per table, got %d entries", len(hook.AllEntries()))
		}
	})

	t.Run("TruncatesToFirstPage", func(t *testing.T) {
		var many []string
		for i := 0; i < 12; i++ {
			many = append(many, fmt.Sprintf("table-%02d", i))
		}
		lister := &fakeTableLister{names: many}
		service, _ := NewTableService(lister, 10)
		logger, _ := test.NewNullLogger()

		names, err := service.ListTables(ctx, logger)
		if err != nil {
			t.Fatalf("ListTables failed: %v", err)
		}
		if len(names) != 10 {
			t.Errorf("Expected 10 names, got %d", len(names))
		}
		if names[9] != "table-09" {
			t.Errorf("Expected first page order to be kept, got %v", names)
		}
		if lister.calls != 1 {
			t.Errorf("Expected a single call, got %d", lister.calls)
		}
	})

	t.Run("EmptyStore", func(t *testing.T) {
		service, _ := NewTableService(&fakeTableLister{}, 10)
		logger, _ := test.NewNullLogger()

		names, err := service.ListTables(ctx, logger)
		if err != nil {
			t.Fatalf("ListTables failed: %v", err)
		}
		if names == nil || len(names) != 0 {
			t.Errorf("Expected empty non-nil slice, got %#v", names)
		}
	})

	t.Run("DownstreamFailureNotRetried", func(t *testing.T) {
		cause := errors.New("AccessDeniedException")
		lister := &fakeTableLister{err: cause}
		service, _ := NewTableService(lister, 10)
		logger, _ := test.NewNullLogger()

		_, err := service.ListTables(ctx, logger)
		if err == nil {
			t.Fatal("Expected error")
		}
		if !errors.Is(err, cause) {
			t.Errorf("Expected underlying error to be kept, got %v", err)
		}
		if !IsDownstreamError(err) {
			t.Errorf("Expected DownstreamError, got %T", err)
		}
		if lister.calls != 1 {
			t.Errorf("Expected no retries, got %d calls", lister.calls)
		}
	})
}

func TestNewTableService(t *testing.T) {
	if _, err := NewTableService(nil, 10); err == nil {
		t.Error("Expected error for nil lister")
	}

	lister := &fakeTableLister{}
	service, err := NewTableService(lister, 0)
	if err != nil {
		t.Fatalf("NewTableService failed: %v", err)
	}
	logger, _ := test.NewNullLogger()
	service.ListTables(context.Background(), logger)
	if lister.limit != DefaultPageLimit {
		t.Errorf("Expected default limit %d, got %d", DefaultPageLimit, lister.limit)
	}
}

func TestNewServiceContainer(t *testing.T) {
	if _, err := NewServiceContainer(&fakeTableLister{}, nil); err == nil {
		t.Error("Expected error for nil config")
	}

	container, err := NewServiceContainer(&fakeTableLister{}, &ServiceConfig{PageLimit: 10})
	if err != nil {
		t.Fatalf("NewServiceContainer failed: %v", err)
	}
	if container.AuthorizerService == nil || container.EchoService == nil || container.TableService == nil {
		t.Error("Expected all services to be created")
	}

	container, err = NewServiceContainer(nil, &ServiceConfig{PageLimit: 10})
	if err != nil {
		t.Fatalf("NewServiceContainer without lister failed: %v", err)
	}
	if container.TableService != nil {
		t.Error("Expected no table service without a lister")
	}
}

package database

import (
	"errors"
	"strings"
	"testing"

	"github.com/graelo/milvus-project-helper/internal/cli"
	"github.com/graelo/milvus-project-helper/internal/utils/test/assert"
	"github.com/graelo/milvus-project-helper/internal/utils/test/mock"
)

func TestDatabaseListHandler(t *testing.T) {
	t.Run("should list each database with its collections", func(t *testing.T) {
		var calls []string
		milvusClient := mock.MilvusClient{}
		milvusClient.DatabasesFn = func() ([]string, error) {
			return []string{"default", "db_trees"}, nil
		}
		milvusClient.UseDatabaseFn = func(name string) error {
			calls = append(calls, "UseDatabase:"+name)
			return nil
		}
		milvusClient.CollectionsFn = func() ([]string, error) {
			return []string{"embeddings"}, nil
		}

		out, ui := mock.NewUI()

		cmd := &CommandList{}
		assert.Nil(t, cmd.Handler(nil, ui, cli.Clients{Milvus: milvusClient}))

		// every database context is entered then restored
		assert.Equal(t, []string{
			"UseDatabase:default",
			"UseDatabase:default",
			"UseDatabase:db_trees",
			"UseDatabase:default",
		}, calls)

		output := out.String()
		assert.True(t, strings.Contains(output, "Database 'db_trees':"), "expected output to name the database, got: %s", output)
		assert.True(t, strings.Contains(output, "embeddings"), "expected output to list the collections, got: %s", output)
	})

	t.Run("should note a database whose collections cannot be listed", func(t *testing.T) {
		milvusClient := mock.MilvusClient{}
		milvusClient.DatabasesFn = func() ([]string, error) {
			return []string{"db_private", "db_trees"}, nil
		}
		activeDatabase := ""
		milvusClient.UseDatabaseFn = func(name string) error {
			activeDatabase = name
			return nil
		}
		milvusClient.CollectionsFn = func() ([]string, error) {
			if activeDatabase == "db_private" {
				return nil, errors.New("permission denied")
			}
			return nil, nil
		}

		out, ui := mock.NewUI()

		cmd := &CommandList{}
		assert.Nil(t, cmd.Handler(nil, ui, cli.Clients{Milvus: milvusClient}))

		output := out.String()
		assert.True(t,
			strings.Contains(output, "Database 'db_private': collections not listed (permission denied)"),
			"expected output to note the unreadable database, got: %s", output,
		)
		assert.True(t,
			strings.Contains(output, "Database 'db_trees': no collections"),
			"expected output to report the empty database, got: %s", output,
		)
	})

	t.Run("should report when no databases exist", func(t *testing.T) {
		milvusClient := mock.MilvusClient{}
		milvusClient.DatabasesFn = func() ([]string, error) { return nil, nil }

		out, ui := mock.NewUI()

		cmd := &CommandList{}
		assert.Nil(t, cmd.Handler(nil, ui, cli.Clients{Milvus: milvusClient}))

		assert.True(t,
			strings.Contains(out.String(), "No databases found"),
			"expected output to report no databases, got: %s", out.String(),
		)
	})
}

// Package catalog defines the interface for loading game tables and building operators
package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=catalogmock github.com/KirkDiggler/operator-codex/internal/services/catalog Service

import (
	"context"

	"github.com/KirkDiggler/operator-codex/internal/entities/gamedata"
	"github.com/KirkDiggler/operator-codex/internal/operator"
)

// Service defines the interface for catalog operations
type Service interface {
	// LoadTables reads and decodes every table once; later calls reuse the result
	// Returns errors.FailedPrecondition if a required table is missing
	// Returns errors.DataLoss if a table cannot be decoded
	LoadTables(ctx context.Context) (*LoadTablesOutput, error)

	// GetOperator builds one operator by character id
	// Returns errors.InvalidArgument for an empty id
	// Returns errors.NotFound if the id is not in character_table
	// Returns errors.FailedPrecondition if the record cannot be classified
	GetOperator(ctx context.Context, input *GetOperatorInput) (*GetOperatorOutput, error)

	// ListOperators builds every operator, skipping records that fail to build
	ListOperators(ctx context.Context, input *ListOperatorsInput) (*ListOperatorsOutput, error)
}

// LoadTablesOutput describes the loaded dataset
type LoadTablesOutput struct {
	Tables *gamedata.Tables
	// Characters is the number of character_table records, operators or not
	Characters int
	// Missing lists optional tables that were absent and treated as empty
	Missing []string
}

// GetOperatorInput defines the request for building one operator
type GetOperatorInput struct {
	ID          string
	Recruitable bool
}

// GetOperatorOutput defines the response for building one operator
type GetOperatorOutput struct {
	Operator *operator.Operator
}

// ListOperatorsInput defines the request for building every operator
type ListOperatorsInput struct {
	// RecruitableIDs marks operators obtainable through recruitment
	RecruitableIDs []string
	// IncludeUnavailable keeps operators that cannot currently be obtained
	IncludeUnavailable bool
}

// ListOperatorsOutput defines the response for building every operator
type ListOperatorsOutput struct {
	// Operators are sorted by id
	Operators []*operator.Operator
	// Skipped counts operator records that could not be built
	Skipped int
}

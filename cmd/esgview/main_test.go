package main_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sustainlab/esgview"
	main "github.com/sustainlab/esgview/cmd/esgview"
	"github.com/sustainlab/esgview/mock"
	"go.uber.org/zap"
)

func testApp() (*main.App, *struct {
	viewed []esgview.Company
	table  *esgview.WeightTable
}) {
	got := &struct {
		viewed []esgview.Company
		table  *esgview.WeightTable
	}{}

	app := &main.App{
		CompaniesPath: "companies.json",
		Loader: &mock.CompanyLoader{
			LoadFn: func(path string) ([]esgview.Company, error) {
				return []esgview.Company{{Name: "台積電", StockID: "2330"}}, nil
			},
		},
		Logger: zap.NewNop(),
		NewViewer: func(table *esgview.WeightTable) esgview.Viewer {
			got.table = table
			return &mock.Viewer{
				ViewFn: func(_ context.Context, companies []esgview.Company) error {
					got.viewed = companies
					return nil
				},
			}
		},
	}
	return app, got
}

func TestApp_Run_Success(t *testing.T) {
	t.Parallel()

	app, got := testApp()

	err := app.Run(context.Background())

	require.NoError(t, err)
	require.Len(t, got.viewed, 1)
	assert.Equal(t, "台積電", got.viewed[0].Name)
	assert.Nil(t, got.table, "no weight source configured")
}

func TestApp_Run_LoadError(t *testing.T) {
	t.Parallel()

	app, _ := testApp()
	loadErr := errors.New("no such file")
	app.Loader = &mock.CompanyLoader{
		LoadFn: func(string) ([]esgview.Company, error) {
			return nil, loadErr
		},
	}

	err := app.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, loadErr)
}

func TestApp_Run_EmptyDataset(t *testing.T) {
	t.Parallel()

	app, got := testApp()
	app.Loader = &mock.CompanyLoader{
		LoadFn: func(string) ([]esgview.Company, error) {
			return nil, nil
		},
	}

	err := app.Run(context.Background())

	require.ErrorIs(t, err, main.ErrNoCompanies)
	assert.Nil(t, got.viewed, "viewer should not run for an empty dataset")
}

func TestApp_Run_WeightsArePassedThrough(t *testing.T) {
	t.Parallel()

	table := &esgview.WeightTable{
		Entries: []esgview.WeightEntry{
			{Aspect: "環境", Topic: "溫室氣體排放", Weights: map[string]int{"半導體業": 2}},
		},
	}

	app, got := testApp()
	app.Weights = &mock.WeightSource{
		WeightTableFn: func(context.Context) (*esgview.WeightTable, error) {
			return table, nil
		},
	}

	err := app.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, table, got.table)
}

func TestApp_Run_WeightFailureDegrades(t *testing.T) {
	t.Parallel()

	app, got := testApp()
	app.Weights = &mock.WeightSource{
		WeightTableFn: func(context.Context) (*esgview.WeightTable, error) {
			return nil, errors.New("parse error")
		},
	}

	err := app.Run(context.Background())

	require.NoError(t, err, "a missing reference table never blocks startup")
	require.Len(t, got.viewed, 1)
	assert.Nil(t, got.table)
}

func TestApp_Run_Rescore(t *testing.T) {
	t.Parallel()

	app, got := testApp()
	app.Rescore = true
	app.Loader = &mock.CompanyLoader{
		LoadFn: func(string) ([]esgview.Company, error) {
			return []esgview.Company{{
				Name:     "台積電",
				Industry: "半導體業",
				Total:    99, // stale, should be recomputed
				Claims: []esgview.ClaimRecord{
					{Category: "E", Topic: "溫室氣體排放", RiskScore: "2"},
				},
			}}, nil
		},
	}

	err := app.Run(context.Background())

	require.NoError(t, err)
	require.Len(t, got.viewed, 1)
	// One E claim, net 2 of max 4: E and Total both become 50.
	assert.Equal(t, 50.0, got.viewed[0].E)
	assert.Equal(t, 50.0, got.viewed[0].Total)
	assert.Equal(t, 0.0, got.viewed[0].S)
}

func TestApp_Run_ViewError(t *testing.T) {
	t.Parallel()

	viewErr := errors.New("terminal error")
	app, _ := testApp()
	app.NewViewer = func(*esgview.WeightTable) esgview.Viewer {
		return &mock.Viewer{
			ViewFn: func(context.Context, []esgview.Company) error {
				return viewErr
			},
		}
	}

	err := app.Run(context.Background())

	require.Error(t, err)
	assert.Equal(t, viewErr, err)
}

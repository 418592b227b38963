package pdftable

import "bankparse/statement-extract/internal/models"

// MockSource implements extractor.TableSource for testing. It returns
// predefined tables instead of reading a PDF.
type MockSource struct {
	MockTables []models.Table
	MockErr    error
}

// NewMockSource creates a MockSource with the given tables and error.
func NewMockSource(tables []models.Table, err error) *MockSource {
	return &MockSource{MockTables: tables, MockErr: err}
}

// Tables returns the predefined tables or error.
func (m *MockSource) Tables(path string) ([]models.Table, error) {
	if m.MockErr != nil {
		return nil, m.MockErr
	}
	return m.MockTables, nil
}

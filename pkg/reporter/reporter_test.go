package reporter

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/utplsql/utplsql-go/internal/testutil"
	"github.com/utplsql/utplsql-go/pkg/reporter/mocks"
	"github.com/utplsql/utplsql-go/pkg/wire"
)

func TestSanitizeTypeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"UT_FOO-BAR!", "UT_FOOBAR"},
		{"ut_documentation_reporter", "ut_documentation_reporter"},
		{"UT_X; DROP TABLE t", "UT_XDROPTABLEt"},
		{"schema.ut_rep", "schemaut_rep"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeTypeName(tt.in))
			r, err := New(tt.in, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.TypeName())
		})
	}
}

func TestNewWithoutAttributes(t *testing.T) {
	r, err := New(TypeJUnit, nil)
	require.NoError(t, err)
	assert.Empty(t, r.ID())
	assert.Nil(t, r.Attributes())
	assert.False(t, r.IsInit())
	assert.False(t, r.HasOutput())
}

func TestNewTakesIDFromSecondAttribute(t *testing.T) {
	tests := []struct {
		name  string
		attrs wire.Attributes
		want  string
	}{
		{"text", wire.Attributes{TypeXUnit, "ABC123", nil}, "ABC123"},
		{"raw", wire.Attributes{TypeXUnit, []byte{0xde, 0xad, 0xbe, 0xef}}, "DEADBEEF"},
		{"number", wire.Attributes{TypeXUnit, int64(42)}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(TypeXUnit, tt.attrs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.ID())
			assert.Equal(t, tt.attrs, r.Attributes())
		})
	}
}

func TestNewRejectsMalformedAttributes(t *testing.T) {
	for name, attrs := range map[string]wire.Attributes{
		"empty":     {},
		"too short": {TypeXUnit},
		"null id":   {TypeXUnit, nil},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := New(TypeXUnit, attrs)
			assert.ErrorIs(t, err, ErrMalformedObject)
		})
	}
}

func TestAttributesAreCopied(t *testing.T) {
	attrs := wire.Attributes{TypeXUnit, "ID1"}
	r, err := New(TypeXUnit, attrs)
	require.NoError(t, err)

	attrs[1] = "CHANGED"
	assert.Equal(t, "ID1", r.Attributes()[1])

	got := r.Attributes()
	got[1] = "ALSO CHANGED"
	assert.Equal(t, "ID1", r.Attributes()[1])
}

func TestInit(t *testing.T) {
	tests := []struct {
		name      string
		hasOutput sql.NullInt64
		want      bool
	}{
		{"one", sql.NullInt64{Int64: 1, Valid: true}, true},
		{"zero", sql.NullInt64{Int64: 0, Valid: true}, false},
		{"two", sql.NullInt64{Int64: 2, Valid: true}, false},
		{"null", sql.NullInt64{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			constructed := wire.Attributes{TypeCoveralls, "A1B2C3", "2026-10-19"}
			cat := mocks.NewMockCatalog(t)
			cat.EXPECT().Construct(mock.Anything, TypeCoveralls).Return(constructed, nil).Once()
			cat.EXPECT().HasOutput(mock.Anything, mock.MatchedBy(func(o *wire.Object) bool {
				return o.TypeName == TypeCoveralls && wire.Equal(o.Attributes, constructed)
			})).Return(tt.hasOutput, nil).Once()

			r := NewCoveralls()
			require.NoError(t, r.Init(testutil.Context(t, 0), cat))
			assert.True(t, r.IsInit())
			assert.Equal(t, tt.want, r.HasOutput())
			assert.Equal(t, "A1B2C3", r.ID())
			assert.Equal(t, constructed, r.Attributes())
		})
	}
}

func TestInitConstructFailureSkipsHasOutput(t *testing.T) {
	cause := errors.New("ORA-04067: not executed, package body does not exist")
	cat := mocks.NewMockCatalog(t)
	cat.EXPECT().Construct(mock.Anything, TypeSonarTest).Return(nil, cause).Once()

	r := NewSonarTest()
	err := r.Init(testutil.Context(t, 0), cat)
	assert.Equal(t, cause, err)
	assert.False(t, r.IsInit())
	assert.False(t, r.HasOutput())
	assert.Empty(t, r.ID())

	cat.AssertNumberOfCalls(t, "Construct", 1)
	cat.AssertNumberOfCalls(t, "HasOutput", 0)
}

func TestInitHasOutputFailureLeavesUninitialized(t *testing.T) {
	cause := errors.New("has_output failed")
	cat := mocks.NewMockCatalog(t)
	cat.EXPECT().Construct(mock.Anything, TypeDebug).Return(wire.Attributes{TypeDebug, "FF"}, nil).Once()
	cat.EXPECT().HasOutput(mock.Anything, mock.Anything).Return(sql.NullInt64{}, cause).Once()

	previous := wire.Attributes{TypeDebug, "0A"}
	r, err := New(TypeDebug, previous)
	require.NoError(t, err)

	err = r.Init(testutil.Context(t, 0), cat)
	assert.Equal(t, cause, err)
	assert.False(t, r.IsInit())
	assert.False(t, r.HasOutput())
	// The constructed object is discarded.
	assert.Equal(t, "0A", r.ID())
	assert.Equal(t, previous, r.Attributes())
}

func TestInitHasOutputFailureOnFreshReporter(t *testing.T) {
	cat := mocks.NewMockCatalog(t)
	cat.EXPECT().Construct(mock.Anything, TypeDebug).Return(wire.Attributes{TypeDebug, "FF"}, nil).Once()
	cat.EXPECT().HasOutput(mock.Anything, mock.Anything).Return(sql.NullInt64{}, errors.New("has_output failed")).Once()

	r := NewDebug()
	require.Error(t, r.Init(testutil.Context(t, 0), cat))
	assert.Empty(t, r.ID())
	assert.Nil(t, r.Attributes())
}

func TestInitMalformedConstructorResult(t *testing.T) {
	cat := mocks.NewMockCatalog(t)
	cat.EXPECT().Construct(mock.Anything, TypeTeamCity).Return(wire.Attributes{TypeTeamCity}, nil).Once()

	r := NewTeamCity()
	err := r.Init(testutil.Context(t, 0), cat)
	assert.ErrorIs(t, err, ErrMalformedObject)
	assert.False(t, r.IsInit())
	cat.AssertNotCalled(t, "HasOutput", mock.Anything, mock.Anything)
}

func TestValue(t *testing.T) {
	cat := mocks.NewMockCatalog(t)
	cat.EXPECT().Resolve(mock.Anything, TypeJUnit).
		Return(wire.TypeDescriptor{Name: TypeJUnit, Attributes: []string{"SELF_TYPE", "REPORTER_ID"}}, nil).Once()

	r, err := New(TypeJUnit, wire.Attributes{TypeJUnit, "0102"})
	require.NoError(t, err)

	obj, err := r.Value(testutil.Context(t, 0), cat)
	require.NoError(t, err)
	assert.Equal(t, TypeJUnit, obj.TypeName)
	assert.Equal(t, wire.Attributes{TypeJUnit, "0102"}, obj.Attributes)
}

func TestValueUnknownType(t *testing.T) {
	cat := mocks.NewMockCatalog(t)
	cat.EXPECT().Resolve(mock.Anything, "UT_NOPE").Return(wire.TypeDescriptor{}, ErrUnknownType).Once()

	r, err := New("UT_NOPE", nil)
	require.NoError(t, err)

	_, err = r.Value(testutil.Context(t, 0), cat)
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestValueArityMismatch(t *testing.T) {
	cat := mocks.NewMockCatalog(t)
	cat.EXPECT().Resolve(mock.Anything, TypeXUnit).
		Return(wire.TypeDescriptor{Name: TypeXUnit, Attributes: []string{"A", "B", "C"}}, nil).Once()

	r, err := New(TypeXUnit, wire.Attributes{TypeXUnit, "ID"})
	require.NoError(t, err)

	_, err = r.Value(testutil.Context(t, 0), cat)
	assert.ErrorIs(t, err, wire.ErrArityMismatch)
}

type stubObject struct {
	mock.Mock
}

func (s *stubObject) TypeName() string {
	return s.Called().String(0)
}

func (s *stubObject) Init(ctx context.Context, cat Catalog) error {
	return s.Called(ctx, cat).Error(0)
}

func (s *stubObject) Value(ctx context.Context, cat Catalog) (*wire.Object, error) {
	args := s.Called(ctx, cat)
	obj, _ := args.Get(0).(*wire.Object)
	return obj, args.Error(1)
}

func TestInitAllStopsAtFirstFailure(t *testing.T) {
	cat := mocks.NewMockCatalog(t)
	cause := errors.New("boom")

	first := &stubObject{}
	first.On("Init", mock.Anything, cat).Return(nil).Once()

	second := &stubObject{}
	second.On("Init", mock.Anything, cat).Return(cause).Once()
	second.On("TypeName").Return("UT_SECOND").Once()

	third := &stubObject{}

	err := InitAll(testutil.Context(t, 0), cat, first, second, third)
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "UT_SECOND")

	first.AssertExpectations(t)
	second.AssertExpectations(t)
	third.AssertNotCalled(t, "Init", mock.Anything, mock.Anything)
}

func TestKnownTypes(t *testing.T) {
	known := Known()
	assert.Len(t, known, 11)
	for _, name := range known {
		assert.Equal(t, name, SanitizeTypeName(name))
	}
	assert.Equal(t, TypeCoverageCobertura, NewCoverageCobertura().TypeName())
	assert.Equal(t, TypeTFSJUnit, NewTFSJUnit().TypeName())
}

package errors

import (
	goerrors "errors"

	"github.com/go-sql-driver/mysql"
	"github.com/muhammadheryan/inventory-hub/constant"
)

type CustomError struct {
	errType constant.ErrorType
	detail  string
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

// ErrorDetail returns extra context attached to the error, e.g. the raw
// body of a failed FOOM Hub response. Empty when none was attached.
func (c CustomError) ErrorDetail() string {
	return c.detail
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

func SetCustomErrorWithDetail(errorType constant.ErrorType, detail string) CustomError {
	return CustomError{
		errType: errorType,
		detail:  detail,
	}
}

const mysqlDuplicateEntry = 1062

// IsDuplicateEntry reports whether err is a MySQL unique-constraint
// violation, so storage-level uniqueness surfaces as a Conflict instead of
// an internal error.
func IsDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return goerrors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

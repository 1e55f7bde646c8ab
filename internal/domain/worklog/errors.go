package worklog

import "errors"

var ErrWorkLogExists = errors.New("work log already submitted for this date")

package models

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var ErrCardNotFound = status.Errorf(codes.NotFound, "card not found")

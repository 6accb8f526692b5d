package domain

import "errors"

// ErrAuthenticationRequired is returned when no credential is presented.
// A present-but-empty credential is classified the same way.
var ErrAuthenticationRequired = errors.New("authentication required")

// ErrInvalidToken covers malformed, badly signed and expired tokens, and
// tokens whose payload lacks a usable identity id.
var ErrInvalidToken = errors.New("invalid token")

// ErrInvalidCredentials is returned for both an unknown username and a
// wrong password; callers must not be able to tell the two apart.
var ErrInvalidCredentials = errors.New("invalid credentials")

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrCourseNotFound = errors.New("course not found")
var ErrCollectionNotFound = errors.New("collection not found")

// ErrUnauthorized means the caller is authenticated but the ownership
// policy denied the action.
var ErrUnauthorized = errors.New("you do not have permission to perform this action")

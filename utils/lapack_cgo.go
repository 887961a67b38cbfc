//go:build netlib
// +build netlib

package utils

// Build with -tags netlib to route BLAS through the system OpenBLAS
// instead of the pure Go implementation.

/*
#cgo LDFLAGS: -lopenblas -lm -lpthread
#include <cblas.h>
*/
import "C"

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	netblas "gonum.org/v1/netlib/blas/netlib"
)

func init() {
	blas64.Use(netblas.Implementation{})
	fmt.Println("Using netlib to accelerate BLAS")
}

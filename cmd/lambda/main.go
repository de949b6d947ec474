package main

import (
	m "mandelfield/pkg/lambda"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	lambda.Start(m.RenderRegion)
}

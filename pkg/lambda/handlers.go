// Package lambda packages the field renderer as a single serverless
// endpoint: one invocation computes and renders one region.
package lambda

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"log"

	"github.com/aws/aws-lambda-go/events"

	"mandelfield/pkg/field"
	"mandelfield/pkg/render"
)

// RenderRequest is the JSON body of a render invocation. Transform names the
// pointwise display transform; empty means none.
type RenderRequest struct {
	XMin       float64 `json:"xmin"`
	XMax       float64 `json:"xmax"`
	YMin       float64 `json:"ymin"`
	YMax       float64 `json:"ymax"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Iterations int     `json:"iterations"`
	Smooth     bool    `json:"smooth"`
	Transform  string  `json:"transform"`
}

// RenderResponse echoes the request parameters alongside the rendered image
// as base64 PNG.
type RenderResponse struct {
	Params RenderRequest `json:"params"`
	Image  string        `json:"image"`
}

// RenderRegion handles one API Gateway invocation. Bad parameters come back
// as a 400 with the validation message; only encoding or marshaling problems
// surface as invocation errors.
func RenderRegion(req events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
	var rr RenderRequest
	if err := json.Unmarshal([]byte(req.Body), &rr); err != nil {
		log.Println("[lambda] error unmarshaling request: ", err)
		return clientError(err), nil
	}

	tr, err := render.ParseTransform(rr.Transform)
	if err != nil {
		return clientError(err), nil
	}

	log.Println("[lambda] rendering region:", rr)
	v, err := field.Compute(field.Params{
		Min:     complex(rr.XMin, rr.YMin),
		Max:     complex(rr.XMax, rr.YMax),
		Nx:      rr.Width,
		Ny:      rr.Height,
		MaxIter: rr.Iterations,
		Smooth:  rr.Smooth,
	})
	if err != nil {
		return clientError(err), nil
	}

	img, err := render.New().Render(v, render.WithTransform(tr))
	if err != nil {
		return clientError(err), nil
	}

	buf := &bytes.Buffer{}
	if err := render.EncodePNG(buf, img); err != nil {
		log.Println("[lambda] unable to encode image: ", err)
		return nil, err
	}

	b, err := json.Marshal(RenderResponse{
		Params: rr,
		Image:  base64.StdEncoding.EncodeToString(buf.Bytes()),
	})
	if err != nil {
		log.Println("[lambda] error marshaling result: ", err)
		return nil, err
	}

	return &events.APIGatewayProxyResponse{
		Headers:    map[string]string{"Content-Type": "application/json"},
		StatusCode: 200,
		Body:       string(b),
	}, nil
}

func clientError(err error) *events.APIGatewayProxyResponse {
	return &events.APIGatewayProxyResponse{
		Headers:    map[string]string{"Content-Type": "text/plain"},
		StatusCode: 400,
		Body:       err.Error(),
	}
}

func (r RenderRequest) String() string {
	b, _ := json.Marshal(r)
	return string(b)
}

package sicar

import (
	"fmt"
	"math/rand/v2"
	"net/url"
)

const defaultBaseURL = "https://car.gov.br/publico"

// captchaIDSpace bounds the random cache-busting id on challenge requests.
const captchaIDSpace = 1_000_000

// indexURL is the landing page that seeds the session cookies.
func (c *Client) indexURL() string {
	return c.cfg.BaseURL + "/imoveis/index"
}

// captchaURL returns a fresh challenge image URL. The random id keeps
// intermediate caches from replaying an already-expired challenge.
func (c *Client) captchaURL() string {
	return fmt.Sprintf("%s/municipios/ReCaptcha?id=%d", c.cfg.BaseURL, rand.IntN(captchaIDSpace))
}

// stateURL builds the state-level base download URL.
func (c *Client) stateURL(state State, format OutputFormat, captcha string) string {
	q := url.Values{}
	q.Set("idEstado", string(state))
	q.Set("tipoBase", string(format))
	q.Set("ReCaptcha", captcha)
	return c.cfg.BaseURL + "/estados/downloadBase?" + q.Encode()
}

// cityURL builds the municipality-level download URL. City downloads carry
// the contact email alongside the solved captcha.
func (c *Client) cityURL(city string, format OutputFormat, captcha string) string {
	path := "/municipios/shapefile"
	if format == CSV {
		path = "/municipios/csv"
	}
	q := url.Values{}
	q.Set("municipio", city)
	q.Set("email", c.cfg.Email)
	q.Set("ReCaptcha", captcha)
	return c.cfg.BaseURL + path + "?" + q.Encode()
}

// downloadURL picks the endpoint matching the request scope.
func (c *Client) downloadURL(req DownloadRequest, captcha string) string {
	if req.City != "" {
		return c.cityURL(req.City, req.Format, captcha)
	}
	return c.stateURL(req.State, req.Format, captcha)
}

// citiesURL lists the municipalities of a state on the landing page.
func (c *Client) citiesURL(state State) string {
	q := url.Values{}
	q.Set("sigla", string(state))
	return c.indexURL() + "?" + q.Encode()
}

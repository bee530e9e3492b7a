package sicar

// defaultUserAgent impersonates a desktop browser; the portal refuses
// obvious script agents.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/88.0.4324.96 Safari/537.36 Edg/88.0.705.56"

// browserHeaders returns the base headers sent on every portal request.
// Accept-Encoding stays unset: the transport only auto-decodes compression
// it negotiated itself, and challenge images are sniffed after decoding.
func browserHeaders() map[string]string {
	return map[string]string{
		"User-Agent": defaultUserAgent,
		"Accept":     "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,image/apng,*/*;q=0.8,application/signed-exchange;v=b3;q=0.9",
	}
}

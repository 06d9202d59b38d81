package cobertura

import "encoding/xml"

type coverage struct {
	XMLName  xml.Name  `xml:"coverage"`
	Packages *packages `xml:"packages"`
}

type packages struct {
	Package []pkg `xml:"package"`
}

type pkg struct {
	Name    string   `xml:"name,attr"`
	Classes *classes `xml:"classes"`
}

type classes struct {
	Class []class `xml:"class"`
}

type class struct {
	Name     string  `xml:"name,attr"`
	Filename *string `xml:"filename,attr"`
	Lines    *lines  `xml:"lines"`
}

type lines struct {
	Line []line `xml:"line"`
}

type line struct {
	Number *string `xml:"number,attr"`
	Hits   *string `xml:"hits,attr"`
}

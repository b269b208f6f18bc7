// Package kml writes the fixed-structure visualization documents.
//
// The document is built by hand with a strings.Builder rather than
// encoding/xml marshaling because the output byte structure (namespace
// attributes, style and style-map IDs, coordinate formatting) is contractual
// for downstream visualization tools.
//
// Output shape per file:
//
//	<kml xmlns=... xmlns:gx=... xmlns:kml=... xmlns:atom=...>
//	  <Document>
//	    <name>{date} {track name}.kml</name>
//	    <Style id="style1">…</Style>
//	    <StyleMap id="stylemap_id00">…</StyleMap>
//	    <Placemark>
//	      <name>{date} {track name}</name>
//	      <styleUrl>#stylemap_id00</styleUrl>
//	      <MultiGeometry><LineString><coordinates>lon,lat,ele …</coordinates></LineString></MultiGeometry>
//	    </Placemark>
//	  </Document>
//	</kml>
package kml

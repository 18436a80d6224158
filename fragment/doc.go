// Package fragment implements page fragments: parts of an HTML page (head
// additions, named body containers, foot scripts, per element attributes,
// title and canonical url) which are sent to a client doing partial page
// navigation instead of a complete document.
//
// A fragment template is a small HTML document recognizing four regions,
// each of them optional:
//
//	<head>
//	  <title>Page title</title>
//	  <meta url="/canonical/url">
//	  <link rel="stylesheet" href="/page.css">
//	</head>
//	<body>
//	  <div for="main"><p>Content of #main</p></div>
//	  <div><p>Content of #container</p></div>
//	</body>
//	<foot><script src="/page.js"></script></foot>
//	<attributes>
//	  <x id="nav-news" class="active"/>
//	</attributes>
//
// Templates are parsed into a Core which can then be curried (request time
// overrides), merged with other fragments and serialized to JSON for the
// client. Absence of a region is preserved through all operations and is
// different from a present but empty region.
package fragment

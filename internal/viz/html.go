package viz

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/genomicmedlab/dgigo/internal/netgraph"
)

// compiledTemplate is parsed at init time to fail fast on template errors.
var compiledTemplate *template.Template

func init() {
	compiledTemplate = template.Must(template.New("viz").Parse(htmlTemplate))
}

// HTMLOptions configures HTML generation.
type HTMLOptions struct {
	Layout string // "spring", "force", "circle", or "grid"
	Title  string
}

// DefaultOptions returns default HTML generation options.
func DefaultOptions() HTMLOptions {
	return HTMLOptions{
		Layout: "spring",
		Title:  "Drug-Gene Interaction Network",
	}
}

// ValidLayouts lists the supported layout names. "spring" uses the
// precomputed force-directed coordinates; the rest delegate to
// Cytoscape.js layout algorithms.
var ValidLayouts = []string{"spring", "force", "circle", "grid"}

// GenerateHTML generates a self-contained HTML page for the network.
func GenerateHTML(g *netgraph.Graph, opts HTMLOptions) (string, error) {
	if g == nil {
		return "", fmt.Errorf("graph cannot be nil")
	}

	if err := validateLayout(opts.Layout); err != nil {
		return "", err
	}

	if g.IsEmpty() {
		return generateEmptyHTML(), nil
	}

	if opts.Layout == "" || opts.Layout == "spring" {
		g.SpringLayout()
	}

	graphJSON, err := ToCytoscapeJSON(g)
	if err != nil {
		return "", err
	}

	title := opts.Title
	if title == "" {
		title = DefaultOptions().Title
	}

	data := templateData{
		Title:     title,
		GraphJSON: template.JS(graphJSON),
		Layout:    layoutToCytoscape(opts.Layout),
	}

	var buf bytes.Buffer
	if err := compiledTemplate.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// validateLayout checks if the layout option is valid.
func validateLayout(layout string) error {
	switch layout {
	case "", "spring", "force", "circle", "grid":
		return nil
	default:
		return fmt.Errorf("invalid layout %q: must be spring, force, circle, or grid", layout)
	}
}

// templateData holds data for the HTML template.
type templateData struct {
	Title     string
	GraphJSON template.JS
	Layout    string
}

// layoutToCytoscape converts layout names to Cytoscape.js layout
// algorithm names. Spring coordinates are precomputed, so cytoscape just
// presets them.
func layoutToCytoscape(layout string) string {
	switch layout {
	case "circle":
		return "circle"
	case "grid":
		return "grid"
	case "force":
		return "cose"
	default:
		return "preset"
	}
}

// generateEmptyHTML returns HTML for an empty graph state.
func generateEmptyHTML() string {
	return `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Drug-Gene Interaction Network - Empty</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      display: flex;
      justify-content: center;
      align-items: center;
      height: 100vh;
      margin: 0;
      background: #f5f5f5;
    }
    .empty-state {
      text-align: center;
      color: #666;
    }
    .empty-state h2 {
      margin-bottom: 0.5em;
      color: #333;
    }
    .empty-state code {
      background: #e0e0e0;
      padding: 2px 6px;
      border-radius: 3px;
    }
  </style>
</head>
<body>
  <div class="empty-state">
    <h2>No interaction data</h2>
    <p>The query returned no drug-gene interactions.</p>
    <p>Try other terms with <code>dgigo interactions</code></p>
  </div>
</body>
</html>`
}

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <script src="https://unpkg.com/cytoscape@3/dist/cytoscape.min.js"></script>
  <style>
    * {
      box-sizing: border-box;
    }
    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      margin: 0;
      padding: 0;
      background: #f5f5f5;
    }
    #cy {
      width: 100%;
      height: 100vh;
      background: white;
    }
    #tooltip {
      position: absolute;
      display: none;
      background: white;
      border: 1px solid #ccc;
      border-radius: 4px;
      padding: 8px 12px;
      box-shadow: 0 2px 8px rgba(0,0,0,0.15);
      max-width: 320px;
      font-size: 13px;
      z-index: 1000;
      pointer-events: none;
    }
    #tooltip .type {
      font-size: 10px;
      text-transform: uppercase;
      color: #888;
      margin-bottom: 4px;
    }
    #tooltip .label {
      font-weight: bold;
      margin-bottom: 4px;
    }
    #tooltip .detail {
      color: #555;
      margin: 2px 0;
    }
  </style>
</head>
<body>
  <div id="cy"></div>
  <div id="tooltip"></div>
  <script>
    (function() {
      const graphData = {{.GraphJSON}};
      const layout = "{{.Layout}}";

      const cy = cytoscape({
        container: document.getElementById('cy'),
        elements: graphData,
        style: [
          // Gene nodes - blue circles
          {
            selector: 'node[?isGene]',
            style: {
              'background-color': '#4A90D9',
              'label': 'data(label)',
              'color': '#333',
              'font-size': '10px',
              'text-valign': 'bottom',
              'text-margin-y': '5px',
              'width': 'mapData(degree, 0, 10, 25, 50)',
              'height': 'mapData(degree, 0, 10, 25, 50)'
            }
          },
          // Drug nodes - orange diamonds
          {
            selector: 'node[isGene = false]',
            style: {
              'background-color': '#E8923A',
              'shape': 'diamond',
              'label': 'data(label)',
              'color': '#333',
              'font-size': '10px',
              'text-valign': 'bottom',
              'text-margin-y': '5px',
              'width': 'mapData(degree, 0, 10, 25, 50)',
              'height': 'mapData(degree, 0, 10, 25, 50)'
            }
          },
          // Neighbor-set compound parents
          {
            selector: ':parent',
            style: {
              'background-opacity': 0.08,
              'border-color': '#bbb',
              'border-width': 1
            }
          },
          // Approved interactions - green
          {
            selector: 'edge[?approval]',
            style: {
              'line-color': '#5CB85C',
              'curve-style': 'bezier',
              'width': 2
            }
          },
          {
            selector: 'edge',
            style: {
              'line-color': '#95A5A6',
              'curve-style': 'bezier',
              'width': 2
            }
          },
          {
            selector: 'node.highlighted',
            style: {
              'border-width': 3,
              'border-color': '#ff6b6b'
            }
          },
          {
            selector: 'node.dimmed',
            style: {
              'opacity': 0.3
            }
          },
          {
            selector: 'edge.dimmed',
            style: {
              'opacity': 0.2
            }
          }
        ],
        layout: {
          name: layout,
          animate: false,
          nodeRepulsion: 8000,
          idealEdgeLength: 100,
          edgeElasticity: 100
        }
      });

      const tooltip = document.getElementById('tooltip');

      function showTooltip(evt, content) {
        tooltip.innerHTML = content;
        tooltip.style.display = 'block';
        const pos = evt.renderedPosition || evt.position;
        tooltip.style.left = (pos.x + 15) + 'px';
        tooltip.style.top = (pos.y + 15) + 'px';
      }

      function hideTooltip() {
        tooltip.style.display = 'none';
      }

      function escapeHtml(str) {
        if (!str) return '';
        return String(str).replace(/&/g, '&amp;')
                  .replace(/</g, '&lt;')
                  .replace(/>/g, '&gt;')
                  .replace(/"/g, '&quot;');
      }

      function getNodeTooltip(node) {
        const data = node.data();
        let html = '<div class="type">' + (data.isGene ? 'gene' : 'drug') + '</div>';
        html += '<div class="label">' + escapeHtml(data.label) + '</div>';
        html += '<div class="detail">Interactions: ' + data.degree + '</div>';
        return html;
      }

      function getEdgeTooltip(edge) {
        const data = edge.data();
        let html = '<div class="type">interaction</div>';
        html += '<div class="label">' + escapeHtml(data.id) + '</div>';
        html += '<div class="detail">Approved: ' + data.approval + '</div>';
        html += '<div class="detail">Score: ' + data.score + '</div>';
        if (data.sourcedata && data.sourcedata.length > 0) {
          html += '<div class="detail">Sources: ' + data.sourcedata.map(escapeHtml).join(', ') + '</div>';
        }
        if (data.pmid && data.pmid.length > 0) {
          html += '<div class="detail">PMIDs: ' + data.pmid.join(', ') + '</div>';
        }
        return html;
      }

      cy.on('mouseover', 'node', function(evt) {
        if (evt.target.isParent()) return;
        showTooltip(evt, getNodeTooltip(evt.target));
      });

      cy.on('mouseout', 'node', hideTooltip);

      cy.on('mouseover', 'edge', function(evt) {
        showTooltip(evt, getEdgeTooltip(evt.target));
      });

      cy.on('mouseout', 'edge', hideTooltip);

      cy.on('tap', 'node', function(evt) {
        const node = evt.target;
        cy.elements().removeClass('highlighted dimmed');
        const neighborhood = node.neighborhood().add(node);
        neighborhood.addClass('highlighted');
        cy.elements().not(neighborhood).addClass('dimmed');
      });

      cy.on('tap', function(evt) {
        if (evt.target === cy) {
          cy.elements().removeClass('highlighted dimmed');
        }
      });
    })();
  </script>
</body>
</html>`
